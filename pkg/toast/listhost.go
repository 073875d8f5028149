package toast

import (
	"log/slog"
	"time"

	"github.com/vango-dev/goey/pkg/headless"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/motion"
	"github.com/vango-dev/goey/pkg/schedule"
)

// DefaultHostDuration is how long ListHost shows a simple toast when no
// duration is given.
const DefaultHostDuration = 4 * time.Second

// ListHost displays toasts in in-memory lists of headless elements, one
// list per position. It runs auto-close timers itself, pausing them while
// a toast is hovered.
type ListHost struct {
	sched    schedule.Scheduler
	text     headless.TextMetrics
	duration time.Duration
	visible  int
	max      int
	gap      float64
	logger   *slog.Logger

	toaster *Toaster
	lists   map[Position]*headless.List
	entries map[string]*listEntry
}

type listEntry struct {
	inst   *Instance
	toast  *headless.Toast
	list   *headless.List
	timer  *motion.Countdown
	unsub  func()
	hidden bool
}

// ListHostOption configures a ListHost.
type ListHostOption func(*ListHost)

// WithTextMetrics sets the text metrics elements are sized with.
func WithTextMetrics(m headless.TextMetrics) ListHostOption {
	return func(h *ListHost) { h.text = m }
}

// WithDefaultDuration sets the auto-close delay used when a toast gives
// none.
func WithDefaultDuration(d time.Duration) ListHostOption {
	return func(h *ListHost) { h.duration = d }
}

// WithMaxToasts evicts the oldest toast of a list once it holds more than
// n. Zero keeps every toast.
func WithMaxToasts(n int) ListHostOption { return func(h *ListHost) { h.max = n } }

// WithHostLogger sets the host's logger.
func WithHostLogger(l *slog.Logger) ListHostOption { return func(h *ListHost) { h.logger = l } }

// NewListHost creates an empty host running timers on s.
func NewListHost(s schedule.Scheduler, opts ...ListHostOption) *ListHost {
	h := &ListHost{
		sched:    s,
		text:     headless.DefaultMetrics,
		duration: DefaultHostDuration,
		visible:  DefaultConfig().VisibleToasts,
		gap:      DefaultConfig().Gap,
		logger:   slog.Default(),
		lists:    make(map[Position]*headless.List),
		entries:  make(map[string]*listEntry),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// bind is called by New.
func (h *ListHost) bind(t *Toaster) {
	h.toaster = t
	h.visible = t.config.VisibleToasts
	h.gap = t.config.Gap
}

// Show implements Host.
func (h *ListHost) Show(inst *Instance, opts ShowOptions) {
	if e, ok := h.entries[inst.ID()]; ok {
		h.arm(e, opts.Duration)
		e.list.Restack()
		return
	}

	list := h.list(opts.Position)
	ht := headless.NewToast(h.text)
	e := &listEntry{inst: inst, toast: ht, list: list}
	id := inst.ID()
	e.timer = motion.NewCountdown(h.sched, func() { h.expire(id) })
	h.entries[id] = e

	ht.Apply(inst.Snapshot())
	list.Add(id, ht)
	e.unsub = inst.Subscribe(func(s morph.Snapshot) {
		ht.Apply(s)
		h.pauseOnHover(e, s.Hovered)
	})
	inst.Mount(ht.Refs(), ht.Content, list)
	list.Restack()
	h.arm(e, opts.Duration)
	h.logger.Debug("toast mounted", "id", id, "position", opts.Position, "list", list.Len())

	h.trim(list)
	h.restyle(list)
}

// Dismiss implements Host.
func (h *ListHost) Dismiss(id string) {
	e, ok := h.entries[id]
	if !ok {
		return
	}
	delete(h.entries, id)
	e.timer.Stop()
	e.unsub()
	e.list.Remove(id)
	e.list.Restack()
	h.restyle(e.list)
}

// List returns the list for p, creating it on first use.
func (h *ListHost) List(p Position) *headless.List { return h.list(p) }

// Toast returns the elements of a mounted toast.
func (h *ListHost) Toast(id string) (*headless.Toast, bool) {
	e, ok := h.entries[id]
	if !ok {
		return nil, false
	}
	return e.toast, true
}

// Visible reports whether a mounted toast is within its list's visible
// count.
func (h *ListHost) Visible(id string) bool {
	e, ok := h.entries[id]
	return ok && !e.hidden
}

// Remaining is the time left on a toast's auto-close timer.
func (h *ListHost) Remaining(id string) time.Duration {
	if e, ok := h.entries[id]; ok {
		return e.timer.Remaining()
	}
	return 0
}

// Hover forwards pointer enter and leave to a mounted toast.
func (h *ListHost) Hover(id string, hovered bool) {
	if e, ok := h.entries[id]; ok {
		e.inst.Hover(hovered)
	}
}

// Click forwards an action click to a mounted toast.
func (h *ListHost) Click(id string) {
	if e, ok := h.entries[id]; ok {
		e.inst.ClickAction()
	}
}

func (h *ListHost) list(p Position) *headless.List {
	l, ok := h.lists[p]
	if !ok {
		l = headless.NewList(h.gap)
		h.lists[p] = l
	}
	return l
}

func (h *ListHost) arm(e *listEntry, d time.Duration) {
	e.timer.Stop()
	switch d {
	case Persistent:
		return
	case 0:
		d = h.duration
	}
	e.timer.Start(d)
	if e.inst.Snapshot().Hovered {
		e.timer.Pause()
	}
}

func (h *ListHost) pauseOnHover(e *listEntry, hovered bool) {
	switch {
	case hovered && e.timer.Running():
		e.timer.Pause()
	case !hovered && e.timer.Paused():
		e.timer.Resume()
	}
}

func (h *ListHost) expire(id string) {
	if h.toaster != nil {
		h.toaster.AutoClose(id)
	}
}

// trim evicts the oldest toasts past the max.
func (h *ListHost) trim(l *headless.List) {
	if h.max <= 0 {
		return
	}
	for l.Len() > h.max {
		items := l.Items()
		oldest := items[len(items)-1].(*headless.Item)
		if h.toaster == nil {
			h.Dismiss(oldest.ID)
			continue
		}
		h.toaster.Evict(oldest.ID)
	}
}

// restyle marks toasts past the visible count hidden.
func (h *ListHost) restyle(l *headless.List) {
	for i, it := range l.Items() {
		item := it.(*headless.Item)
		if e, ok := h.entries[item.ID]; ok {
			e.hidden = h.visible > 0 && i >= h.visible
		}
	}
}
