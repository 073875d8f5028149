package vdom

import "strings"

// voidElements are HTML elements that cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// svgElements are rendered self-closing when they have no children.
var svgElements = map[string]bool{
	"svg":      true,
	"path":     true,
	"circle":   true,
	"g":        true,
	"line":     true,
	"rect":     true,
	"polyline": true,
	"defs":     true,
	"filter":   true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// IsSVGElement returns true if the tag belongs to the SVG namespace.
func IsSVGElement(tag string) bool {
	return svgElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case Component:
			if v != nil {
				node.Children = append(node.Children, &VNode{Kind: KindComponent, Comp: v})
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

func (v *VNode) setAttr(a Attr) {
	switch a.Key {
	case "":
		return
	case "key":
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	case "class":
		// Repeated Class attributes accumulate.
		if prev, ok := v.Props["class"].(string); ok && prev != "" {
			if s, ok := a.Value.(string); ok && s != "" {
				v.Props["class"] = prev + " " + s
			}
			return
		}
	}
	v.Props[a.Key] = a.Value
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// HTML elements

func Div(args ...any) *VNode    { return createElement("div", args) }
func Span(args ...any) *VNode   { return createElement("span", args) }
func P(args ...any) *VNode      { return createElement("p", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func A(args ...any) *VNode      { return createElement("a", args) }
func Ol(args ...any) *VNode     { return createElement("ol", args) }
func Li(args ...any) *VNode     { return createElement("li", args) }
func Section(args ...any) *VNode {
	return createElement("section", args)
}
func Br(args ...any) *VNode { return createElement("br", args) }
func Img(args ...any) *VNode {
	return createElement("img", args)
}

// SVG elements

func Svg(args ...any) *VNode      { return createElement("svg", args) }
func Path(args ...any) *VNode     { return createElement("path", args) }
func Circle(args ...any) *VNode   { return createElement("circle", args) }
func G(args ...any) *VNode        { return createElement("g", args) }
func Line(args ...any) *VNode     { return createElement("line", args) }
func Rect(args ...any) *VNode     { return createElement("rect", args) }
func Polyline(args ...any) *VNode { return createElement("polyline", args) }

func splitFields(s string) []string { return strings.Fields(s) }
