package vdom

import (
	"sort"
	"strconv"
	"strings"
)

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Empty classes are dropped.
func Class(classes ...string) Attr {
	parts := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// StyleAttr sets the style attribute verbatim.
func StyleAttr(style string) Attr { return attr("style", style) }

// Style sets the style attribute from properties. Empty values are
// skipped and properties are written in name order.
func Style(props map[string]string) Attr {
	keys := make([]string, 0, len(props))
	for k, v := range props {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return Attr{}
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(props[k])
		sb.WriteByte(';')
	}
	return attr("style", sb.String())
}

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }

// Accessibility

func Role(role string) Attr         { return attr("role", role) }
func AriaLabel(label string) Attr   { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr   { return attr("aria-hidden", hidden) }
func AriaLive(mode string) Attr     { return attr("aria-live", mode) }
func AriaAtomic(atomic bool) Attr   { return attr("aria-atomic", atomic) }
func AriaBusy(busy bool) Attr       { return attr("aria-busy", busy) }
func TitleAttr(title string) Attr   { return attr("title", title) }
func Type(t string) Attr            { return attr("type", t) }
func Href(url string) Attr          { return attr("href", url) }
func Disabled() Attr                { return attr("disabled", true) }
func TabIndex(index int) Attr       { return attr("tabindex", index) }
func Focusable(focusable bool) Attr { return attr("focusable", focusable) }

// SVG presentation attributes

// ViewBox sets the viewBox attribute.
func ViewBox(minX, minY, width, height float64) Attr {
	return attr("viewBox", num(minX)+" "+num(minY)+" "+num(width)+" "+num(height))
}

func Xmlns(ns string) Attr            { return attr("xmlns", ns) }
func D(path string) Attr              { return attr("d", path) }
func Fill(paint string) Attr          { return attr("fill", paint) }
func Stroke(paint string) Attr        { return attr("stroke", paint) }
func StrokeWidth(w float64) Attr      { return attr("stroke-width", w) }
func StrokeLinecap(cap string) Attr   { return attr("stroke-linecap", cap) }
func StrokeLinejoin(join string) Attr { return attr("stroke-linejoin", join) }
func StrokeDasharray(v string) Attr   { return attr("stroke-dasharray", v) }
func Opacity(o float64) Attr          { return attr("opacity", o) }
func Transform(t string) Attr         { return attr("transform", t) }
func Points(p string) Attr            { return attr("points", p) }
func Overflow(v string) Attr          { return attr("overflow", v) }

// Cx, Cy and R place a circle.
func Cx(v float64) Attr { return attr("cx", v) }
func Cy(v float64) Attr { return attr("cy", v) }
func R(v float64) Attr  { return attr("r", v) }

// X1..Y2 place a line.
func X1(v float64) Attr { return attr("x1", v) }
func Y1(v float64) Attr { return attr("y1", v) }
func X2(v float64) Attr { return attr("x2", v) }
func Y2(v float64) Attr { return attr("y2", v) }

// Width and Height set numeric dimensions.
func Width(w float64) Attr  { return attr("width", w) }
func Height(h float64) Attr { return attr("height", h) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
