package schedule

import "time"

// FrameInterval is the frame period both schedulers use (60fps).
const FrameInterval = 16 * time.Millisecond

// Cancel stops a scheduled callback. Calling it after the callback ran,
// or more than once, is a no-op.
type Cancel func()

// Scheduler is the runtime toasts are driven by. Callbacks always run on
// the scheduler's loop, never concurrently with each other.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Cancel

	// Frame runs fn on the next animation frame.
	Frame(fn func()) Cancel

	// Dispatch queues fn to run on the loop. It is the only method that
	// may be called from other goroutines.
	Dispatch(fn func())
}

// Nop is a Cancel that does nothing.
func Nop() {}

// Stop calls every non-nil cancel and clears the slots.
func Stop(cancels ...*Cancel) {
	for _, c := range cancels {
		if c != nil && *c != nil {
			(*c)()
			*c = nil
		}
	}
}
