package layout

import (
	"log/slog"

	"github.com/vango-dev/goey/pkg/schedule"
	"github.com/vango-dev/goey/pkg/telemetry"
)

// Registry shares one Observer subscription per container. It must be
// used from the scheduler's loop.
type Registry struct {
	sched    schedule.Scheduler
	observer Observer
	logger   *slog.Logger
	metrics  *telemetry.Metrics

	entries map[Container]*entry
}

type entry struct {
	stop      func()
	callbacks map[uint64]func()
	nextID    uint64
	applying  bool
	pass      schedule.Cancel
	release   schedule.Cancel
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry's logger.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// WithMetrics counts correction passes.
func WithMetrics(m *telemetry.Metrics) RegistryOption {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry creates a registry observing containers with o.
func NewRegistry(s schedule.Scheduler, o Observer, opts ...RegistryOption) *Registry {
	r := &Registry{
		sched:    s,
		observer: o,
		logger:   slog.Default(),
		entries:  make(map[Container]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds fn to c's correction pass. The first registration for a
// container starts observing it; the returned unregister stops observing
// once the last callback is gone. Unregister is idempotent.
func (r *Registry) Register(c Container, fn func()) (unregister func()) {
	e, ok := r.entries[c]
	if !ok {
		e = &entry{callbacks: make(map[uint64]func())}
		r.entries[c] = e
		if r.observer != nil {
			e.stop = r.observer.Observe(c, func() { r.mutated(e) })
		}
		r.logger.Debug("layout observer started", "toasts", 1)
	}
	id := e.nextID
	e.nextID++
	e.callbacks[id] = fn

	done := false
	return func() {
		if done {
			return
		}
		done = true
		delete(e.callbacks, id)
		if len(e.callbacks) > 0 {
			return
		}
		schedule.Stop(&e.pass, &e.release)
		if e.stop != nil {
			e.stop()
			e.stop = nil
		}
		if r.entries[c] == e {
			delete(r.entries, c)
		}
		r.logger.Debug("layout observer stopped")
	}
}

// Observed reports how many containers are being observed.
func (r *Registry) Observed() int { return len(r.entries) }

// Callbacks reports how many callbacks are registered for c.
func (r *Registry) Callbacks(c Container) int {
	if e, ok := r.entries[c]; ok {
		return len(e.callbacks)
	}
	return 0
}

func (r *Registry) mutated(e *entry) {
	if e.applying || len(e.callbacks) == 0 {
		return
	}
	e.applying = true
	e.pass = r.sched.Frame(func() {
		e.pass = nil
		r.metrics.LayoutCorrection()
		for _, fn := range snapshot(e.callbacks) {
			fn()
		}
		e.release = r.sched.Frame(func() {
			e.release = nil
			e.applying = false
		})
	})
}

func snapshot(m map[uint64]func()) []func() {
	out := make([]func(), 0, len(m))
	for _, fn := range m {
		out = append(out, fn)
	}
	return out
}
