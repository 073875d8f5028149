package motion

import (
	"math"
	"testing"
	"time"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestSpringFromBounceEndpoints(t *testing.T) {
	tests := []struct {
		bounce             float64
		stiffness, damping float64
	}{
		{0.05, 221.875, 23},
		{0.8, 550, 8},
		{0.4, 375, 16},
		{0, 221.875, 23}, // clamped up
		{2.0, 550, 8},    // clamped down
	}
	for _, tt := range tests {
		s := SpringFromBounce(tt.bounce)
		if !approx(s.Stiffness, tt.stiffness, 1e-9) || !approx(s.Damping, tt.damping, 1e-9) {
			t.Errorf("SpringFromBounce(%v) = %+v, want stiffness %v damping %v",
				tt.bounce, s, tt.stiffness, tt.damping)
		}
	}
}

func TestSpringMonotonic(t *testing.T) {
	prev := SpringFromBounce(MinBounce)
	for b := MinBounce + 0.05; b <= MaxBounce; b += 0.05 {
		s := SpringFromBounce(b)
		if s.Stiffness <= prev.Stiffness {
			t.Errorf("stiffness not increasing at bounce %v", b)
		}
		if s.Damping >= prev.Damping {
			t.Errorf("damping not decreasing at bounce %v", b)
		}
		prev = s
	}
}

func TestSpringForMass(t *testing.T) {
	s := SpringFor(ExpandDuration, MorphSpringDuration, 0.4)
	if !approx(s.Mass, 0.7*600.0/900.0, 1e-9) {
		t.Errorf("mass = %v", s.Mass)
	}
	s = SpringFor(CollapseDuration, MorphSpringDuration, 0.4)
	if !approx(s.Mass, 0.7, 1e-9) {
		t.Errorf("mass = %v, want 0.7", s.Mass)
	}
}

func TestSpringStepperSettles(t *testing.T) {
	st := newStepper(0, 1, SpringTransition(SpringFor(ExpandDuration, MorphSpringDuration, 0.4)))
	var (
		v    float64
		done bool
		peak float64
	)
	for elapsed := 16 * time.Millisecond; elapsed < 5*time.Second && !done; elapsed += 16 * time.Millisecond {
		v, done = st.step(elapsed)
		peak = math.Max(peak, v)
	}
	if !done || v != 1 {
		t.Fatalf("spring did not settle: v=%v done=%v", v, done)
	}
	if peak <= 1 {
		t.Errorf("bouncy spring should overshoot, peak=%v", peak)
	}
}

func TestEasedStepper(t *testing.T) {
	st := newStepper(0, 10, Smooth(400*time.Millisecond))
	mid, done := st.step(200 * time.Millisecond)
	if done || !approx(mid, 5, 0.01) {
		t.Errorf("midpoint = %v done=%v, want ~5", mid, done)
	}
	end, done := st.step(400 * time.Millisecond)
	if !done || end != 10 {
		t.Errorf("end = %v done=%v", end, done)
	}
}

func TestInstantStepper(t *testing.T) {
	v, done := newStepper(3, 7, Instant()).step(0)
	if !done || v != 7 {
		t.Errorf("instant = %v %v", v, done)
	}
}

func TestPreDismissDelay(t *testing.T) {
	if got := PreDismissDelay(4*time.Second, false); got != 2770*time.Millisecond {
		t.Errorf("PreDismissDelay = %v, want 2.77s", got)
	}
	if got := PreDismissDelay(4*time.Second, true); got != 3990*time.Millisecond {
		t.Errorf("reduced PreDismissDelay = %v", got)
	}
	if got := PreDismissDelay(time.Second, false); got > 0 {
		t.Errorf("short display should not auto-collapse, got %v", got)
	}
}
