package headless

import (
	"math"
	"strconv"
	"strings"

	"github.com/vango-dev/goey/pkg/measure"
)

// Element is an in-memory element. Explicit width and max-height styles
// override its natural size the way CSS would.
type Element struct {
	Name string

	styles  map[string]string
	attrs   map[string]string
	w, h    float64
	padX    float64
	nextSub int
	subs    map[int]func()
}

var _ measure.Element = (*Element)(nil)

// NewElement creates an element with no size.
func NewElement(name string) *Element {
	return &Element{
		Name:   name,
		styles: make(map[string]string),
		attrs:  make(map[string]string),
		subs:   make(map[int]func()),
	}
}

// Style implements measure.Element.
func (e *Element) Style(prop string) string { return e.styles[prop] }

// SetStyle implements measure.Element. Empty values remove the property.
// Only natural size changes notify resize subscribers, so measuring never
// re-triggers itself.
func (e *Element) SetStyle(prop, value string) {
	if value == "" {
		delete(e.styles, prop)
		return
	}
	e.styles[prop] = value
}

// Styles returns a copy of the inline styles.
func (e *Element) Styles() map[string]string {
	out := make(map[string]string, len(e.styles))
	for k, v := range e.styles {
		out[k] = v
	}
	return out
}

// SetAttribute implements measure.Element.
func (e *Element) SetAttribute(name, value string) { e.attrs[name] = value }

// Attribute returns an attribute value.
func (e *Element) Attribute(name string) string { return e.attrs[name] }

// OffsetWidth implements measure.Element.
func (e *Element) OffsetWidth() float64 { return e.box()[0] }

// OffsetHeight implements measure.Element.
func (e *Element) OffsetHeight() float64 { return e.box()[1] }

// PaddingX implements measure.Element.
func (e *Element) PaddingX() float64 { return e.padX }

// SetPaddingX sets the horizontal padding total.
func (e *Element) SetPaddingX(p float64) { e.padX = p }

// Natural returns the unconstrained size.
func (e *Element) Natural() (w, h float64) { return e.w, e.h }

// SetNatural changes the unconstrained size, notifying subscribers when
// the rendered box changes.
func (e *Element) SetNatural(w, h float64) {
	if e.w == w && e.h == h {
		return
	}
	e.w, e.h = w, h
	e.notify()
}

// OnResize implements measure.ResizeSource.
func (e *Element) OnResize(fn func()) (stop func()) {
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	return func() { delete(e.subs, id) }
}

// Observers reports how many resize subscriptions are live.
func (e *Element) Observers() int { return len(e.subs) }

func (e *Element) box() [2]float64 {
	w, h := e.w, e.h
	if v, ok := parsePx(e.styles[measure.PropWidth]); ok {
		w = v
	}
	if v, ok := parsePx(e.styles[measure.PropMaxHeight]); ok {
		h = math.Min(h, v)
	}
	return [2]float64{w, h}
}

func (e *Element) notify() {
	for _, fn := range e.subs {
		fn()
	}
}

func parsePx(s string) (float64, bool) {
	if !strings.HasSuffix(s, "px") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	return v, err == nil
}
