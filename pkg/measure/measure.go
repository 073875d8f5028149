// Package measure reads the natural size of a toast's header and content,
// independent of the width, height and clip constraints the morph applies
// to them while animating.
package measure

import (
	"log/slog"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/geometry"
)

// Style properties the morph writes and measurement clears.
const (
	PropWidth     = "width"
	PropOverflow  = "overflow"
	PropMaxHeight = "max-height"
	PropClipPath  = "clip-path"
	PropTransform = "transform"
)

// Element is the slice of a DOM element that measurement and the morph
// need. An empty style value means "not set".
type Element interface {
	Style(prop string) string
	SetStyle(prop, value string)
	SetAttribute(name, value string)
	OffsetWidth() float64
	OffsetHeight() float64
	// PaddingX is the sum of the computed left and right padding.
	PaddingX() float64
}

// Refs are the elements of one mounted toast. Path holds the outline.
type Refs struct {
	Wrapper Element
	Header  Element
	Content Element
	Path    Element
}

// Attached reports whether the elements measurement depends on exist.
func (r Refs) Attached() bool {
	return r.Header != nil && r.Content != nil
}

// Measurer measures one toast's refs.
type Measurer struct {
	Refs   Refs
	Logger *slog.Logger
}

// Measure clears constraints, reads the natural pill width, body width and
// body height, and restores the constraints. It reports false when the
// refs are not attached yet.
func (m Measurer) Measure() (geometry.Dims, bool) {
	if !m.Refs.Attached() {
		m.notReady()
		return geometry.Dims{}, false
	}
	wrapper, content := m.Refs.Wrapper, m.Refs.Content

	var savedWidth string
	if wrapper != nil {
		savedWidth = wrapper.Style(PropWidth)
		wrapper.SetStyle(PropWidth, "")
	}
	saved := save(content, PropOverflow, PropMaxHeight, PropWidth, PropClipPath)
	for prop := range saved {
		content.SetStyle(prop, "")
	}

	d := geometry.Dims{
		Pill:   m.Refs.Header.OffsetWidth() + content.PaddingX(),
		Body:   content.OffsetWidth(),
		Height: content.OffsetHeight(),
	}

	if wrapper != nil {
		wrapper.SetStyle(PropWidth, savedWidth)
	}
	for prop, v := range saved {
		content.SetStyle(prop, v)
	}
	return d, true
}

// PillWidth reads the header's current width plus content padding, which
// is the compact pill width for whatever title is showing now.
func (m Measurer) PillWidth() (float64, bool) {
	if !m.Refs.Attached() {
		m.notReady()
		return 0, false
	}
	return m.Refs.Header.OffsetWidth() + m.Refs.Content.PaddingX(), true
}

func (m Measurer) notReady() {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("measure skipped", "error", errors.New("G001"))
}

func save(el Element, props ...string) map[string]string {
	out := make(map[string]string, len(props))
	for _, p := range props {
		out[p] = el.Style(p)
	}
	return out
}
