package schedule

import (
	"context"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// LoopConfig configures a Loop.
type LoopConfig struct {
	// FrameInterval is the frame period (default: FrameInterval).
	FrameInterval time.Duration

	// QueueSize bounds the dispatch queue (default: 256).
	QueueSize int

	// Logger receives panics recovered from callbacks.
	Logger *slog.Logger
}

// Loop is a Scheduler backed by a single goroutine.
type Loop struct {
	config     LoopConfig
	dispatchCh chan func()
	done       chan struct{}
	closed     atomic.Bool

	mu     sync.Mutex
	frames map[uint64]*frameEntry
	nextID uint64
}

type frameEntry struct {
	fn       func()
	canceled atomic.Bool
}

// NewLoop creates a Loop. Call Run to start processing.
func NewLoop(config LoopConfig) *Loop {
	if config.FrameInterval <= 0 {
		config.FrameInterval = FrameInterval
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 256
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Loop{
		config:     config,
		dispatchCh: make(chan func(), config.QueueSize),
		done:       make(chan struct{}),
		frames:     make(map[uint64]*frameEntry),
	}
}

// Now implements Scheduler.
func (l *Loop) Now() time.Time { return time.Now() }

// After implements Scheduler.
func (l *Loop) After(d time.Duration, fn func()) Cancel {
	var fired atomic.Bool
	timer := time.AfterFunc(d, func() {
		l.Dispatch(func() {
			if fired.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return func() {
		fired.Store(true)
		timer.Stop()
	}
}

// Frame implements Scheduler.
func (l *Loop) Frame(fn func()) Cancel {
	entry := &frameEntry{fn: fn}
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.frames[id] = entry
	l.mu.Unlock()

	return func() {
		entry.canceled.Store(true)
		l.mu.Lock()
		delete(l.frames, id)
		l.mu.Unlock()
	}
}

// Dispatch implements Scheduler.
func (l *Loop) Dispatch(fn func()) {
	if l.closed.Load() {
		return
	}
	select {
	case l.dispatchCh <- fn:
	case <-l.done:
	default:
		l.config.Logger.Warn("dispatch queue full, discarding callback")
	}
}

// Run processes dispatched callbacks and frames until ctx is done or
// Close is called.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.config.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case fn := <-l.dispatchCh:
			l.execute(fn)

		case <-ticker.C:
			l.runFrame()

		case <-ctx.Done():
			l.Close()
			return

		case <-l.done:
			return
		}
	}
}

// Close stops the loop. Pending callbacks are discarded.
func (l *Loop) Close() {
	if l.closed.CompareAndSwap(false, true) {
		close(l.done)
	}
}

// runFrame takes the current frame batch; callbacks requested while it
// runs land in the next frame.
func (l *Loop) runFrame() {
	l.mu.Lock()
	if len(l.frames) == 0 {
		l.mu.Unlock()
		return
	}
	ids := make([]uint64, 0, len(l.frames))
	for id := range l.frames {
		ids = append(ids, id)
	}
	batch := l.frames
	l.frames = make(map[uint64]*frameEntry)
	l.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		if e := batch[id]; !e.canceled.Load() {
			l.execute(e.fn)
		}
	}
}

func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.config.Logger.Error("scheduler callback panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}
