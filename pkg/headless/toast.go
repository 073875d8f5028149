package headless

import (
	"github.com/vango-dev/goey/pkg/measure"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/vdom"
)

// Toast is the element set of one mounted toast.
type Toast struct {
	Metrics TextMetrics

	Wrapper *Element
	Header  *Element
	Content *Element
	Path    *Element
}

// NewToast creates a toast's elements.
func NewToast(m TextMetrics) *Toast {
	t := &Toast{
		Metrics: m,
		Wrapper: NewElement("wrapper"),
		Header:  NewElement("header"),
		Content: NewElement("content"),
		Path:    NewElement("path"),
	}
	t.Content.SetPaddingX(2 * m.PadX)
	return t
}

// Refs returns the toast's elements for measurement and painting.
func (t *Toast) Refs() measure.Refs {
	return measure.Refs{Wrapper: t.Wrapper, Header: t.Header, Content: t.Content, Path: t.Path}
}

// Apply lays the elements out for what s renders, the way a browser
// reflows after a render.
func (t *Toast) Apply(s morph.Snapshot) {
	m := t.Metrics
	t.Header.SetNatural(m.HeaderWidth(s.Title), m.PillHeight)

	var desc, action string
	if s.BodyVisible() {
		desc = s.Description
		if desc == "" && s.Body != nil {
			desc = bodyText(s.Body)
		}
		if s.Action != nil {
			action = s.Action.Label
		}
	}
	w, h := m.Body(s.Title, desc, action, s.BodyVisible())
	t.Content.SetNatural(w, h)
	t.Wrapper.SetNatural(w, h)
}

func bodyText(c vdom.Component) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return vdom.TextContent(c.Render())
}
