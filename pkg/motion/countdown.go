package motion

import (
	"time"

	"github.com/vango-dev/goey/pkg/schedule"
)

// Countdown is a pausable one-shot timer. Pausing preserves the remaining
// time; resuming schedules only what is left.
type Countdown struct {
	sched schedule.Scheduler
	fire  func()

	remaining time.Duration
	started   time.Time
	cancel    schedule.Cancel
}

// NewCountdown creates an idle countdown that calls fire when it elapses.
func NewCountdown(s schedule.Scheduler, fire func()) *Countdown {
	return &Countdown{sched: s, fire: fire}
}

// Start (re)arms the countdown for d and runs it.
func (c *Countdown) Start(d time.Duration) {
	c.Stop()
	c.remaining = d
	c.run()
}

// Pause stops the clock, keeping the remaining time.
func (c *Countdown) Pause() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel = nil
	c.remaining -= c.sched.Now().Sub(c.started)
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Resume continues a paused countdown. It reports false when there is
// nothing to resume.
func (c *Countdown) Resume() bool {
	if c.cancel != nil || c.remaining <= 0 {
		return false
	}
	c.run()
	return true
}

// Stop disarms the countdown and forgets remaining time.
func (c *Countdown) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.remaining = 0
}

// Running reports whether the clock is ticking.
func (c *Countdown) Running() bool { return c.cancel != nil }

// Paused reports whether time remains but the clock is stopped.
func (c *Countdown) Paused() bool { return c.cancel == nil && c.remaining > 0 }

// Remaining is the time left as of now.
func (c *Countdown) Remaining() time.Duration {
	if c.cancel == nil {
		return c.remaining
	}
	left := c.remaining - c.sched.Now().Sub(c.started)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Countdown) run() {
	c.started = c.sched.Now()
	c.cancel = c.sched.After(c.remaining, func() {
		c.cancel = nil
		c.remaining = 0
		if c.fire != nil {
			c.fire()
		}
	})
}
