package morph

import (
	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/vdom"
)

// State is the controller's coarse state.
type State int

const (
	StateCompact State = iota
	StateExpanding
	StateExpanded
	StateCollapsing
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateCompact:
		return "compact"
	case StateExpanding:
		return "expanding"
	case StateExpanded:
		return "expanded"
	case StateCollapsing:
		return "collapsing"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// DismissReason says why a controller asked to be removed.
type DismissReason string

const (
	// ReasonAuto follows the pre-dismiss collapse.
	ReasonAuto DismissReason = "auto"
	// ReasonAction follows an action success morph-back.
	ReasonAction DismissReason = "action"
	// ReasonHost follows Controller.Dismiss.
	ReasonHost DismissReason = "host"
)

// Snapshot is the controller's rendered state at one instant.
type Snapshot struct {
	State State

	// Effective content, with any action success override applied.
	Phase           Phase
	Title           string
	Description     string
	Body            vdom.Component
	Action          *Action
	ActionSucceeded bool

	ShowBody   bool
	Dismissing bool
	Hovered    bool
	Reduced    bool

	Anchor   geometry.Anchor
	Progress float64
	Dims     geometry.Dims
	Measured geometry.Dims
	// FullWidth is the stable width centered toasts lay out in.
	FullWidth float64

	Outline     geometry.Outline
	Constraints geometry.Constraints

	WrapperTransform string
	HeaderTransform  string
}

// Path is the SVG path data of the outline.
func (s Snapshot) Path() string { return s.Outline.String() }

// BodyVisible reports whether description and action render.
func (s Snapshot) BodyVisible() bool { return s.ShowBody && !s.Dismissing }
