package measure

import (
	"time"

	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/schedule"
)

// SecondPass is the delay of the follow-up measurement that catches late
// content reflow.
const SecondPass = 100 * time.Millisecond

// ResizeSource notifies when an observed element's box changes size.
type ResizeSource interface {
	OnResize(fn func()) (stop func())
}

// Watcher keeps a toast's measured dims current. It measures on Start, again
// SecondPass later, after every Remeasure, and on every resize notification.
// commit runs only when the measured dims changed.
type Watcher struct {
	measurer Measurer
	sched    schedule.Scheduler
	source   ResizeSource
	commit   func(geometry.Dims)

	last       geometry.Dims
	second     schedule.Cancel
	stopResize func()
	stopped    bool
}

// NewWatcher creates a watcher. source may be nil.
func NewWatcher(m Measurer, s schedule.Scheduler, source ResizeSource, commit func(geometry.Dims)) *Watcher {
	return &Watcher{measurer: m, sched: s, source: source, commit: commit}
}

// Start runs the mount pass and begins passive observation.
func (w *Watcher) Start() {
	w.stopped = false
	if w.source != nil && w.stopResize == nil {
		w.stopResize = w.source.OnResize(func() {
			w.sched.Dispatch(w.Pass)
		})
	}
	w.Remeasure()
}

// Remeasure runs a pass now and schedules the second pass.
func (w *Watcher) Remeasure() {
	if w.stopped {
		return
	}
	w.Pass()
	schedule.Stop(&w.second)
	w.second = w.sched.After(SecondPass, func() {
		w.second = nil
		w.Pass()
	})
}

// Pass measures once and commits changed dims.
func (w *Watcher) Pass() {
	if w.stopped {
		return
	}
	d, ok := w.measurer.Measure()
	if !ok || d == w.last {
		return
	}
	w.last = d
	if w.commit != nil {
		w.commit(d)
	}
}

// Last is the most recently committed measurement.
func (w *Watcher) Last() geometry.Dims { return w.last }

// Stop cancels the pending pass and stops observation.
func (w *Watcher) Stop() {
	w.stopped = true
	schedule.Stop(&w.second)
	if w.stopResize != nil {
		w.stopResize()
		w.stopResize = nil
	}
}
