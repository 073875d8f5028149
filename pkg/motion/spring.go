package motion

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bounce limits.
const (
	MinBounce     = 0.05
	MaxBounce     = 0.8
	DefaultBounce = 0.4
)

// Spring is a damped harmonic oscillator.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// ClampBounce limits b to [MinBounce, MaxBounce].
func ClampBounce(b float64) float64 {
	return math.Max(MinBounce, math.Min(MaxBounce, b))
}

// SpringFromBounce maps a bounce intensity to spring parameters. Higher
// bounce means a stiffer, less damped spring.
func SpringFromBounce(bounce float64) Spring {
	b := ClampBounce(bounce)
	return Spring{
		Stiffness: 200 + b*437.5,
		Damping:   24 - b*20,
		Mass:      1,
	}
}

// SpringFor scales the bounce spring's mass by an effect's duration
// relative to its reference duration.
func SpringFor(duration, reference time.Duration, bounce float64) Spring {
	s := SpringFromBounce(bounce)
	s.Mass = 0.7
	if reference > 0 {
		s.Mass = 0.7 * float64(duration) / float64(reference)
	}
	return s
}

// Transition describes how a value travels from one number to another.
// The zero Transition is instant: it completes on the first frame.
type Transition struct {
	Spring   *Spring
	Duration time.Duration
	Easing   ease.TweenFunc
}

// SpringTransition animates with spring physics.
func SpringTransition(s Spring) Transition {
	return Transition{Spring: &s}
}

// Eased animates along fn for d.
func Eased(d time.Duration, fn ease.TweenFunc) Transition {
	return Transition{Duration: d, Easing: fn}
}

// Smooth is the cubic ease-in-out used whenever springs are disabled.
func Smooth(d time.Duration) Transition {
	return Eased(d, ease.InOutCubic)
}

// Instant completes on the first frame.
func Instant() Transition {
	return Transition{}
}

// IsSpring reports whether t uses spring physics.
func (t Transition) IsSpring() bool {
	return t.Spring != nil
}

// stepper yields the animated value for a given elapsed time.
type stepper interface {
	step(elapsed time.Duration) (v float64, done bool)
}

func newStepper(from, to float64, t Transition) stepper {
	switch {
	case t.Spring != nil:
		return &springStepper{spring: *t.Spring, x: from, target: to}
	case t.Duration > 0:
		fn := t.Easing
		if fn == nil {
			fn = ease.InOutCubic
		}
		return &easedStepper{
			tween: gween.New(float32(from), float32(to), float32(t.Duration.Seconds()), fn),
			to:    to,
		}
	default:
		return instantStepper(to)
	}
}

type instantStepper float64

func (s instantStepper) step(time.Duration) (float64, bool) { return float64(s), true }

type easedStepper struct {
	tween *gween.Tween
	to    float64
}

func (s *easedStepper) step(elapsed time.Duration) (float64, bool) {
	v, done := s.tween.Set(float32(elapsed.Seconds()))
	if done {
		return s.to, true
	}
	return float64(v), false
}

// Spring integration limits.
const (
	springStep      = time.Millisecond
	springRestDelta = 0.001
	springRestSpeed = 0.01
	springMaxTime   = 10 * time.Second
)

// springStepper integrates with semi-implicit Euler in fixed sub-steps so
// the result depends only on elapsed time, not on frame timing.
type springStepper struct {
	spring Spring
	x, v   float64
	target float64
	t      time.Duration
}

func (s *springStepper) step(elapsed time.Duration) (float64, bool) {
	mass := s.spring.Mass
	if mass <= 0 {
		mass = 1
	}
	dt := springStep.Seconds()
	for s.t+springStep <= elapsed {
		a := (-s.spring.Stiffness*(s.x-s.target) - s.spring.Damping*s.v) / mass
		s.v += a * dt
		s.x += s.v * dt
		s.t += springStep

		if math.Abs(s.x-s.target) < springRestDelta && math.Abs(s.v) < springRestSpeed {
			s.x, s.v = s.target, 0
			return s.x, true
		}
		if s.t >= springMaxTime {
			return s.target, true
		}
	}
	return s.x, false
}
