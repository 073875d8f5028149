package motion

import (
	"time"

	"github.com/vango-dev/goey/pkg/schedule"
)

// Kind names what an animation is doing. At most one animation of a
// driver is active at a time.
type Kind string

const (
	KindExpand       Kind = "expand"
	KindCollapse     Kind = "collapse"
	KindReExpand     Kind = "re-expand"
	KindPillResize   Kind = "pill-resize"
	KindSquish       Kind = "squish"
	KindShake        Kind = "shake"
	KindHeaderSquish Kind = "header-squish"
)

// Monitor observes animation lifecycle. telemetry.Metrics satisfies it.
type Monitor interface {
	AnimationStarted(kind string)
	AnimationSuperseded(kind string)
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithMonitor reports animation starts and supersessions to m.
func WithMonitor(m Monitor) DriverOption {
	return func(d *Driver) { d.monitor = m }
}

// Driver runs one animation at a time on a scheduler's frames. Starting
// a new animation stops the previous one without completing it, so a
// driver is the single writer of the value it animates.
//
// Driver is not safe for concurrent use; call it from the scheduler's
// dispatch context.
type Driver struct {
	sched   schedule.Scheduler
	monitor Monitor

	onTick     func(v float64)
	onComplete func()

	kind    Kind
	active  bool
	value   float64
	start   time.Time
	stepper stepper
	cancel  schedule.Cancel
	gen     uint64
}

// NewDriver creates an idle driver.
func NewDriver(s schedule.Scheduler, opts ...DriverOption) *Driver {
	d := &Driver{sched: s}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnTick sets the per-frame value callback.
func (d *Driver) OnTick(fn func(v float64)) { d.onTick = fn }

// OnComplete sets the callback run once when an animation settles.
// Stopped animations never complete.
func (d *Driver) OnComplete(fn func()) { d.onComplete = fn }

// Start animates from→to. Any running animation is stopped first.
func (d *Driver) Start(kind Kind, from, to float64, tr Transition) {
	if d.active {
		if d.monitor != nil {
			d.monitor.AnimationSuperseded(string(d.kind))
		}
		d.Stop()
	}
	d.gen++
	d.kind = kind
	d.active = true
	d.value = from
	d.start = d.sched.Now()
	d.stepper = newStepper(from, to, tr)
	if d.monitor != nil {
		d.monitor.AnimationStarted(string(kind))
	}
	d.request(d.gen)
}

// Animate sets both callbacks and starts in one call.
func (d *Driver) Animate(kind Kind, from, to float64, tr Transition, tick func(float64), done func()) {
	d.onTick = tick
	d.onComplete = done
	d.Start(kind, from, to, tr)
}

// Stop halts the running animation, leaving the value where it is.
func (d *Driver) Stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.active = false
	d.stepper = nil
	d.gen++
}

// Active returns the running animation kind, if any.
func (d *Driver) Active() (Kind, bool) {
	if !d.active {
		return "", false
	}
	return d.kind, true
}

// Value is the last value produced.
func (d *Driver) Value() float64 { return d.value }

func (d *Driver) request(gen uint64) {
	d.cancel = d.sched.Frame(func() { d.tick(gen) })
}

func (d *Driver) tick(gen uint64) {
	if gen != d.gen || !d.active {
		return
	}
	d.cancel = nil
	v, done := d.stepper.step(d.sched.Now().Sub(d.start))
	d.value = v
	if d.onTick != nil {
		d.onTick(v)
	}
	// The tick callback may have stopped or restarted the driver.
	if gen != d.gen {
		return
	}
	if done {
		d.active = false
		d.stepper = nil
		if d.onComplete != nil {
			d.onComplete()
		}
		return
	}
	d.request(gen)
}
