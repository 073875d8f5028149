package toast

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/vango-dev/goey/pkg/layout"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/pref"
	"github.com/vango-dev/goey/pkg/schedule"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/telemetry"
)

// Dismissal reasons beyond the controller's own.
const (
	// ReasonTimeout is a host auto-close of a simple toast.
	ReasonTimeout morph.DismissReason = "timeout"
	// ReasonReplaced is a toast evicted by its host.
	ReasonReplaced morph.DismissReason = "replaced"
)

// Toaster shows and tracks toasts.
type Toaster struct {
	host     Host
	sched    schedule.Scheduler
	config   Config
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   *telemetry.Tracer
	reduced  *pref.Pref[bool]
	observer layout.Observer
	layouts  *layout.Registry

	seq         atomic.Uint64
	unsubscribe func()

	// Loop-owned.
	instances map[string]*Instance
	order     []string
}

// ToasterOption configures a Toaster.
type ToasterOption func(*Toaster)

// WithConfig sets the global configuration.
func WithConfig(c Config) ToasterOption { return func(t *Toaster) { t.config = c } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ToasterOption { return func(t *Toaster) { t.logger = l } }

// WithMetrics records toast metrics.
func WithMetrics(m *telemetry.Metrics) ToasterOption { return func(t *Toaster) { t.metrics = m } }

// WithTracer records promise spans and lifecycle events.
func WithTracer(tr *telemetry.Tracer) ToasterOption { return func(t *Toaster) { t.tracer = tr } }

// WithReducedMotion follows a reduced-motion preference.
func WithReducedMotion(p *pref.Pref[bool]) ToasterOption { return func(t *Toaster) { t.reduced = p } }

// WithLayoutObserver shares o across toasts mounted into the same list.
func WithLayoutObserver(o layout.Observer) ToasterOption {
	return func(t *Toaster) { t.observer = o }
}

// New creates a Toaster that displays toasts through host and runs them
// on s.
func New(host Host, s schedule.Scheduler, opts ...ToasterOption) *Toaster {
	t := &Toaster{
		host:      host,
		sched:     s,
		config:    DefaultConfig(),
		logger:    slog.Default(),
		instances: make(map[string]*Instance),
	}
	for _, opt := range opts {
		opt(t)
	}
	if b, ok := host.(interface{ bind(*Toaster) }); ok {
		b.bind(t)
	}
	if t.reduced == nil {
		t.reduced = pref.ReducedMotion()
	}
	t.layouts = layout.NewRegistry(s, t.observer,
		layout.WithLogger(t.logger), layout.WithMetrics(t.metrics))
	t.unsubscribe = t.reduced.Subscribe(func(r bool) {
		t.sched.Dispatch(func() {
			for _, in := range t.instances {
				in.ctrl.SetReducedMotion(r)
			}
		})
	})
	return t
}

// Close stops following the reduced-motion preference. Live toasts keep
// running; hosts are closed by their owners.
func (t *Toaster) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

// Config returns the global configuration.
func (t *Toaster) Config() Config { return t.config }

// Show displays a default-phase toast.
func (t *Toaster) Show(title string, opts ...Option) *Handle {
	return t.show(morph.PhaseDefault, title, opts)
}

// Success displays a success toast.
func (t *Toaster) Success(title string, opts ...Option) *Handle {
	return t.show(morph.PhaseSuccess, title, opts)
}

// Error displays an error toast.
func (t *Toaster) Error(title string, opts ...Option) *Handle {
	return t.show(morph.PhaseError, title, opts)
}

// Warning displays a warning toast.
func (t *Toaster) Warning(title string, opts ...Option) *Handle {
	return t.show(morph.PhaseWarning, title, opts)
}

// Info displays an info toast.
func (t *Toaster) Info(title string, opts ...Option) *Handle {
	return t.show(morph.PhaseInfo, title, opts)
}

// Notify displays a toast of any phase.
func (t *Toaster) Notify(phase morph.Phase, title string, opts ...Option) *Handle {
	if phase == morph.PhaseLoading {
		return t.Loading(title, opts...)
	}
	return t.show(phase, title, opts)
}

// Loading displays a persistent loading toast. Its handle moves the same
// toast to success or error.
func (t *Toaster) Loading(title string, opts ...Option) *Handle {
	o := buildOptions(opts)
	if o.id == "" {
		o.id = t.nextID()
	}
	t.sched.Dispatch(func() {
		t.upsert(o, o.content(morph.PhaseLoading, title), Persistent)
	})
	return &Handle{t: t, id: o.id}
}

// Dismiss dismisses the given toasts, or every toast when no id is
// given. Expanded toasts collapse first.
func (t *Toaster) Dismiss(ids ...string) {
	t.sched.Dispatch(func() {
		if len(ids) == 0 {
			ids = append([]string(nil), t.order...)
		}
		for _, id := range ids {
			if in, ok := t.instances[id]; ok {
				in.ctrl.Dismiss()
			}
		}
	})
}

// Get returns a live toast. Call it on the loop.
func (t *Toaster) Get(id string) (*Instance, bool) {
	in, ok := t.instances[id]
	return in, ok
}

// Active returns the ids of live toasts, oldest first. Call it on the
// loop.
func (t *Toaster) Active() []string {
	return append([]string(nil), t.order...)
}

// AutoClose is called by hosts when a simple toast's timer fires.
func (t *Toaster) AutoClose(id string) {
	t.remove(id, ReasonTimeout)
}

// Evict is called by hosts that drop a toast on their own.
func (t *Toaster) Evict(id string) {
	t.remove(id, ReasonReplaced)
}

func (t *Toaster) show(phase morph.Phase, title string, opts []Option) *Handle {
	o := buildOptions(opts)
	if o.id == "" {
		o.id = t.nextID()
	}
	t.sched.Dispatch(func() {
		c := o.content(phase, title)
		t.upsert(o, c, o.hostDuration(c))
	})
	return &Handle{t: t, id: o.id}
}

func (t *Toaster) nextID() string {
	return "goey-" + strconv.FormatUint(t.seq.Add(1), 10)
}

// upsert shows a new toast or updates a live one in place, keeping its
// state machine.
func (t *Toaster) upsert(o options, c morph.Content, d time.Duration) *Instance {
	if in, ok := t.instances[o.id]; ok {
		in.opts = mergeOptions(in.opts, o)
		in.ctrl.Retune(t.settings(in.opts))
		in.ctrl.SetContent(c)
		t.host.Show(in, ShowOptions{Position: in.position, Duration: d, Update: true})
		t.logger.Debug("toast updated", "id", o.id, "phase", c.Phase)
		return in
	}

	in := &Instance{
		id:        o.id,
		toaster:   t,
		opts:      o,
		shownAt:   t.sched.Now(),
		position:  t.config.Position,
		listeners: make(map[int]func(morph.Snapshot)),
	}
	in.ctrl = morph.New(t.sched, c, t.settings(o))
	in.ctrl.OnChange(in.changed)
	in.ctrl.OnDismiss(func(r morph.DismissReason) { t.remove(in.id, r) })

	t.instances[o.id] = in
	t.order = append(t.order, o.id)
	in.ctx, in.span = t.tracer.StartToast(context.Background(), o.id, string(c.Phase))
	t.metrics.ToastShown(string(c.Phase))
	t.logger.Debug("toast shown", "id", o.id, "phase", c.Phase, "expandable", c.Expandable())

	t.host.Show(in, ShowOptions{Position: in.position, Duration: d})
	return in
}

func (t *Toaster) settings(o options) morph.Settings {
	s := morph.Settings{
		Anchor:          t.config.Position.Anchor(),
		Spring:          t.config.Spring,
		Bounce:          t.config.Bounce,
		DisplayDuration: t.config.DisplayDuration,
		ReducedMotion:   t.reduced.Get(),
		Logger:          t.logger,
		Metrics:         t.metrics,
	}
	if o.spring != nil {
		s.Spring = *o.spring
	}
	if o.bounce != nil {
		s.Bounce = *o.bounce
	}
	if o.displayDuration > 0 {
		s.DisplayDuration = o.displayDuration
	}
	return s
}

func (t *Toaster) remove(id string, reason morph.DismissReason) {
	in, ok := t.instances[id]
	if !ok {
		return
	}
	delete(t.instances, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	in.Unmount()
	t.host.Dismiss(id)

	lifetime := t.sched.Now().Sub(in.shownAt)
	t.metrics.ToastDismissed(string(reason), lifetime)
	telemetry.Lifecycle(in.ctx, "dismissed", id, telemetry.AttrReason.String(string(reason)))
	in.span.End()
	t.logger.Debug("toast dismissed", "id", id, "reason", reason, "lifetime", lifetime)

	if reason != morph.ReasonHost && reason != ReasonReplaced && in.opts.onAutoClose != nil {
		in.opts.onAutoClose(id)
	}
	if in.opts.onDismiss != nil {
		in.opts.onDismiss(id)
	}
}

// mergeOptions applies an update's options over the live toast's. Fields
// the update leaves unset keep their values.
func mergeOptions(prev, next options) options {
	out := next
	if out.icon == nil {
		out.icon = prev.icon
	}
	if out.fill == "" {
		out.fill = prev.fill
	}
	if out.border == "" {
		out.border, out.borderWidth = prev.border, prev.borderWidth
	}
	if out.classNames == (shell.ClassNames{}) {
		out.classNames = prev.classNames
	}
	if out.onDismiss == nil {
		out.onDismiss = prev.onDismiss
	}
	if out.onAutoClose == nil {
		out.onAutoClose = prev.onAutoClose
	}
	if out.spring == nil {
		out.spring = prev.spring
	}
	if out.bounce == nil {
		out.bounce = prev.bounce
	}
	if out.displayDuration == 0 {
		out.displayDuration = prev.displayDuration
	}
	return out
}
