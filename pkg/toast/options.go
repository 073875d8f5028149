package toast

import (
	"time"

	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/vdom"
)

// Persistent is the duration of toasts the host must never auto-close.
const Persistent = time.Duration(1<<63 - 1)

// Action is an action button. SuccessLabel, when set, morphs the toast
// back to a success pill titled with it.
type Action = morph.Action

// Option configures one toast.
type Option func(*options)

type options struct {
	id              string
	description     string
	body            vdom.Component
	action          *Action
	icon            vdom.Component
	duration        time.Duration
	displayDuration time.Duration
	spring          *bool
	bounce          *float64
	fill            string
	border          string
	borderWidth     float64
	classNames      shell.ClassNames
	onDismiss       func(id string)
	onAutoClose     func(id string)
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithID sets the toast id. Showing an id that is already displayed
// updates that toast in place.
func WithID(id string) Option { return func(o *options) { o.id = id } }

// WithDescription sets plain text description content.
func WithDescription(text string) Option { return func(o *options) { o.description = text } }

// WithBody sets rich description content. It renders behind an error
// boundary.
func WithBody(c vdom.Component) Option { return func(o *options) { o.body = c } }

// WithAction adds an action button.
func WithAction(a Action) Option { return func(o *options) { o.action = &a } }

// WithIcon replaces the phase icon.
func WithIcon(c vdom.Component) Option { return func(o *options) { o.icon = c } }

// WithDuration sets how long the host shows a simple toast.
func WithDuration(d time.Duration) Option { return func(o *options) { o.duration = d } }

// WithDisplayDuration sets how long an expanded toast stays open before
// collapsing. For simple toasts it acts like WithDuration. On an update
// it applies to the next countdown; a running one keeps its deadline.
func WithDisplayDuration(d time.Duration) Option {
	return func(o *options) { o.displayDuration = d }
}

// WithSpring overrides spring physics for this toast. On an update it
// applies from the next animation.
func WithSpring(on bool) Option { return func(o *options) { o.spring = &on } }

// WithBounce overrides the spring bounce for this toast.
func WithBounce(b float64) Option { return func(o *options) { o.bounce = &b } }

// WithFill sets the outline fill color.
func WithFill(color string) Option { return func(o *options) { o.fill = color } }

// WithBorder sets the outline stroke. A zero width uses the default.
func WithBorder(color string, width float64) Option {
	return func(o *options) { o.border, o.borderWidth = color, width }
}

// WithClassNames appends classes to the toast's parts.
func WithClassNames(c shell.ClassNames) Option { return func(o *options) { o.classNames = c } }

// OnDismiss runs when the toast is removed for any reason.
func OnDismiss(fn func(id string)) Option { return func(o *options) { o.onDismiss = fn } }

// OnAutoClose runs when the toast is removed by its timer or by its own
// collapse.
func OnAutoClose(fn func(id string)) Option { return func(o *options) { o.onAutoClose = fn } }

func (o options) content(phase morph.Phase, title string) morph.Content {
	return morph.Content{
		Phase:       phase,
		Title:       title,
		Description: o.description,
		Body:        o.body,
		Action:      o.action,
	}
}

// hostDuration is the auto-close duration handed to the host. Zero means
// the host's default.
func (o options) hostDuration(c morph.Content) time.Duration {
	if c.Expandable() {
		return Persistent
	}
	if o.displayDuration > 0 {
		return o.displayDuration
	}
	return o.duration
}
