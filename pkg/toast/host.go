package toast

import (
	"log/slog"
	"time"
)

// Event names EventHost emits. Client-side code listens for them.
const (
	EventShow    = "goey:show"
	EventDismiss = "goey:dismiss"
)

// Host displays toasts. A Toaster calls it on the loop.
type Host interface {
	// Show displays inst, or refreshes it when opts.Update is set.
	Show(inst *Instance, opts ShowOptions)
	// Dismiss removes a toast from display.
	Dismiss(id string)
}

// ShowOptions are the host-facing parameters of a Show.
type ShowOptions struct {
	Position Position
	// Duration is the auto-close delay. Zero means the host's default and
	// Persistent means never.
	Duration time.Duration
	// Update is set when the toast is already displayed.
	Update bool
}

// Emitter sends a custom event to a client. server.Ctx satisfies it.
type Emitter interface {
	Emit(name string, data any)
}

// EventHost forwards toasts to a browser client as custom events. The
// client owns the auto-close timer.
type EventHost struct {
	emitter Emitter
	logger  *slog.Logger
}

// NewEventHost creates a host emitting through e. A nil logger uses
// slog.Default.
func NewEventHost(e Emitter, logger *slog.Logger) *EventHost {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHost{emitter: e, logger: logger}
}

// Show emits EventShow with the toast's rendered markup:
//
//	{ id, position, duration, html, update }
//
// duration is in milliseconds, -1 for persistent toasts.
func (h *EventHost) Show(inst *Instance, opts ShowOptions) {
	html, err := inst.HTML()
	if err != nil {
		h.logger.Error("toast render failed", "id", inst.ID(), "error", err)
		return
	}
	h.emitter.Emit(EventShow, map[string]any{
		"id":       inst.ID(),
		"position": string(opts.Position),
		"duration": durationMillis(opts.Duration),
		"html":     html,
		"update":   opts.Update,
	})
}

// Dismiss emits EventDismiss.
func (h *EventHost) Dismiss(id string) {
	h.emitter.Emit(EventDismiss, map[string]any{"id": id})
}

func durationMillis(d time.Duration) int64 {
	if d == Persistent {
		return -1
	}
	return d.Milliseconds()
}
