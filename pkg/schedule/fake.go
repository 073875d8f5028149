package schedule

import (
	"container/heap"
	"sync"
	"time"
)

// Fake is a deterministic Scheduler driven by Advance. Frames are timers
// that fire one FrameInterval after they are requested.
//
// Dispatch may be called from any goroutine; dispatched callbacks run
// on the next Advance or Flush, on the caller's goroutine.
type Fake struct {
	mu       sync.Mutex
	now      time.Time
	seq      uint64
	timers   timerHeap
	inbox    []func()
	interval time.Duration
}

// NewFake creates a Fake starting at a fixed instant.
func NewFake() *Fake {
	return &Fake{
		now:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		interval: FrameInterval,
	}
}

// Now implements Scheduler.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// After implements Scheduler.
func (f *Fake) After(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.schedule(f.now.Add(d), fn)
}

// Frame implements Scheduler.
func (f *Fake) Frame(fn func()) Cancel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.schedule(f.now.Add(f.interval), fn)
}

// Dispatch implements Scheduler.
func (f *Fake) Dispatch(fn func()) {
	f.mu.Lock()
	f.inbox = append(f.inbox, fn)
	f.mu.Unlock()
}

// Elapsed is the virtual time since the Fake was created.
func (f *Fake) Elapsed() time.Duration {
	return f.Now().Sub(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

// Pending returns the number of live timers and frames plus queued
// dispatches. Tests use it to detect leaks after unmount.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.inbox)
	for _, t := range f.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Flush runs queued dispatches without moving time.
func (f *Fake) Flush() {
	for {
		f.mu.Lock()
		inbox := f.inbox
		f.inbox = nil
		f.mu.Unlock()
		if len(inbox) == 0 {
			return
		}
		for _, fn := range inbox {
			fn()
		}
	}
}

// Advance moves time forward by d, running every callback that comes due
// in order. Callbacks scheduled while advancing run too if they fall
// inside the window.
func (f *Fake) Advance(d time.Duration) {
	f.Flush()

	f.mu.Lock()
	end := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.peek()
		if next == nil || next.at.After(end) {
			f.now = end
			f.mu.Unlock()
			f.Flush()
			return
		}
		heap.Pop(&f.timers)
		if next.at.After(f.now) {
			f.now = next.at
		}
		f.mu.Unlock()

		next.fn()
		f.Flush()
	}
}

// AdvanceFrames advances n frame intervals.
func (f *Fake) AdvanceFrames(n int) {
	for i := 0; i < n; i++ {
		f.Advance(f.interval)
	}
}

// peek returns the next live timer, dropping canceled ones. Caller holds mu.
func (f *Fake) peek() *fakeTimer {
	for len(f.timers) > 0 {
		t := f.timers[0]
		if !t.canceled {
			return t
		}
		heap.Pop(&f.timers)
	}
	return nil
}

// schedule adds a timer. Caller holds mu.
func (f *Fake) schedule(at time.Time, fn func()) Cancel {
	f.seq++
	t := &fakeTimer{at: at, seq: f.seq, fn: fn}
	heap.Push(&f.timers, t)
	return func() {
		f.mu.Lock()
		t.canceled = true
		f.mu.Unlock()
	}
}

type fakeTimer struct {
	at       time.Time
	seq      uint64
	fn       func()
	canceled bool
}

// timerHeap orders timers by due time, then by scheduling order.
type timerHeap []*fakeTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*fakeTimer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}
