package toast

import (
	"context"
	"time"

	"github.com/vango-dev/goey/pkg/layout"
	"github.com/vango-dev/goey/pkg/measure"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/render"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/telemetry"
	"github.com/vango-dev/goey/pkg/vdom"
	"go.opentelemetry.io/otel/trace"
)

// Instance is one live toast. Hosts mount it into their elements and
// forward pointer input to it. Its methods must be called on the
// scheduler's loop.
type Instance struct {
	id       string
	toaster  *Toaster
	ctrl     *morph.Controller
	opts     options
	shownAt  time.Time
	position Position
	ctx      context.Context
	span     trace.Span
	state    morph.State

	bridge    *layout.Bridge
	mounted   bool
	listeners map[int]func(morph.Snapshot)
	nextL     int
}

// ID is the toast id.
func (in *Instance) ID() string { return in.id }

// Position is the list position the toast belongs to.
func (in *Instance) Position() Position { return in.position }

// Snapshot is the controller's current state.
func (in *Instance) Snapshot() morph.Snapshot { return in.ctrl.Snapshot() }

// Controller exposes the toast's state machine.
func (in *Instance) Controller() *morph.Controller { return in.ctrl }

// Subscribe registers fn to run after every visible change.
func (in *Instance) Subscribe(fn func(morph.Snapshot)) (unsubscribe func()) {
	id := in.nextL
	in.nextL++
	in.listeners[id] = fn
	return func() { delete(in.listeners, id) }
}

// Mount attaches the toast to its elements and host list. src and
// container may be nil.
func (in *Instance) Mount(refs measure.Refs, src measure.ResizeSource, container layout.Container) {
	if in.mounted {
		return
	}
	in.mounted = true
	if container != nil {
		in.bridge = layout.NewBridge(in.toaster.layouts, container, in.toaster.logger)
		in.ctrl.OnSettle(in.bridge.Sync)
	}
	in.ctrl.Mount(refs, src)
}

// Unmount detaches the toast and cancels all of its timers.
func (in *Instance) Unmount() {
	if !in.mounted {
		return
	}
	in.mounted = false
	in.ctrl.Unmount()
	in.bridge.Close()
	in.bridge = nil
}

// Hover forwards pointer enter and leave.
func (in *Instance) Hover(h bool) { in.ctrl.SetHovered(h) }

// ClickAction forwards an action button click.
func (in *Instance) ClickAction() { in.ctrl.ClickAction() }

// Render builds the toast's markup.
func (in *Instance) Render() *vdom.VNode {
	return shell.Render(in.view())
}

// HTML renders the toast's markup to a string.
func (in *Instance) HTML() (string, error) {
	return render.NewRenderer(render.RendererConfig{}).RenderToString(in.Render())
}

func (in *Instance) view() shell.View {
	fill := in.opts.fill
	if fill == "" {
		fill = in.toaster.config.Fill()
	}
	return shell.View{
		ID:          in.id,
		Snapshot:    in.ctrl.Snapshot(),
		Fill:        fill,
		Border:      in.opts.border,
		BorderWidth: in.opts.borderWidth,
		Classes:     in.opts.classNames,
		Icon:        in.opts.icon,
		ReportError: in.reportRenderError,
	}
}

func (in *Instance) reportRenderError(err error) {
	in.toaster.logger.Warn("toast content render failed", "id", in.id, "error", err)
	in.toaster.metrics.ContentRenderFailure()
}

func (in *Instance) changed(s morph.Snapshot) {
	if s.State != in.state {
		in.state = s.State
		switch s.State {
		case morph.StateExpanded, morph.StateCollapsing:
			telemetry.Lifecycle(in.ctx, s.State.String(), in.id)
		case morph.StateCompact:
			if s.Dismissing {
				telemetry.Lifecycle(in.ctx, "collapsed", in.id)
			}
		}
	}
	for _, fn := range in.listeners {
		fn(s)
	}
}
