package shell

import (
	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/morph"
	. "github.com/vango-dev/goey/pkg/vdom"
)

// Defaults for the outline paint.
const (
	DefaultFill        = "#ffffff"
	DefaultBorderWidth = 1.5
)

// View is everything Render needs for one toast.
type View struct {
	ID       string
	Snapshot morph.Snapshot

	// Fill is the outline fill. Empty means DefaultFill.
	Fill string
	// Border is the outline stroke color. Empty means no stroke.
	Border string
	// BorderWidth is the stroke width when Border is set. Zero means
	// DefaultBorderWidth.
	BorderWidth float64

	Classes ClassNames
	// Icon replaces the phase icon until an action succeeds.
	Icon Component
	// ReportError receives content render failures.
	ReportError func(error)
}

// Render builds the toast markup.
func Render(v View) *VNode {
	s := v.Snapshot
	phase := s.Phase
	center := s.Anchor == geometry.Center

	role, live := "status", "polite"
	if phase == morph.PhaseError {
		role, live = "alert", "assertive"
	}

	return Div(
		Class(ClassWrapper, v.Classes.Wrapper),
		AttrIf(v.ID != "", Data("toast-id", v.ID)),
		Role(role),
		AriaLive(live),
		AriaAtomic(true),
		AttrIf(center, Data("center", "true")),
		Data("state", s.State.String()),
		Style(wrapperStyle(s)),
		blob(v),
		Div(
			Class(ClassContent, contentClass(s), v.Classes.Content),
			Style(contentStyle(s)),
			Div(
				Class(ClassHeader, TitleClass(phase), v.Classes.Header),
				AttrIf(s.HeaderTransform != "none", Style(map[string]string{"transform": s.HeaderTransform})),
				Div(Class(ClassIcon, v.Classes.Icon), iconFor(v)),
				Span(Class(ClassTitle, v.Classes.Title), Text(s.Title)),
			),
			When(s.BodyVisible() && (s.Description != "" || s.Body != nil), func() *VNode {
				return description(v)
			}),
			When(s.BodyVisible() && s.Action != nil, func() *VNode {
				return Div(
					Class(ClassActionWrapper, v.Classes.ActionWrapper),
					Button(
						Class(ClassAction, ActionClass(phase), v.Classes.ActionButton),
						Type("button"),
						AriaLabel(s.Action.Label),
						Text(s.Action.Label),
					),
				)
			}),
		),
	)
}

func blob(v View) *VNode {
	fill := v.Fill
	if fill == "" {
		fill = DefaultFill
	}
	stroke, width := "none", 0.0
	if v.Border != "" {
		stroke, width = v.Border, v.BorderWidth
		if width == 0 {
			width = DefaultBorderWidth
		}
	}
	var d Attr
	if len(v.Snapshot.Outline) > 0 {
		d = D(v.Snapshot.Path())
	}
	return Svg(
		Class(ClassBlob),
		AriaHidden(true),
		Overflow("visible"),
		Path(d, Fill(fill), Stroke(stroke), StrokeWidth(width)),
	)
}

func iconFor(v View) *VNode {
	s := v.Snapshot
	if v.Icon != nil && !s.ActionSucceeded {
		return Boundary(v.Icon, v.ReportError).Render()
	}
	return PhaseIcon(s.Phase)
}

func description(v View) *VNode {
	s := v.Snapshot
	var body any = Text(s.Description)
	if s.Body != nil {
		body = Boundary(s.Body, v.ReportError)
	}
	return Div(
		Class(ClassDescription, v.Classes.Description),
		Style(map[string]string{"text-align": "left"}),
		body,
	)
}

func contentClass(s morph.Snapshot) string {
	if s.ShowBody {
		return ClassContentExpanded
	}
	return ClassContentCompact
}

func wrapperStyle(s morph.Snapshot) map[string]string {
	style := s.Constraints.WrapperStyle()
	switch s.Anchor {
	case geometry.Center:
		style["margin"] = "0 auto"
	case geometry.EdgeRight:
		style["margin-left"] = "auto"
	}
	if s.WrapperTransform != "none" {
		style["transform"] = s.WrapperTransform
	}
	return style
}

func contentStyle(s morph.Snapshot) map[string]string {
	style := s.Constraints.ContentStyle()
	switch s.Anchor {
	case geometry.Center:
		style["text-align"] = "center"
	case geometry.EdgeRight:
		style["text-align"] = "right"
	default:
		style["text-align"] = "left"
	}
	return style
}
