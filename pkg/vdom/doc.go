// Package vdom is the virtual node tree toasts render into.
//
// A tree is built from variadic element constructors that accept
// attributes, child nodes, components, strings and nil:
//
//	Div(Class("goey-header"),
//	    Svg(ViewBox(0, 0, 18, 18), Path(D("M3 9 L7 13 L15 5"))),
//	    Span(Class("goey-title"), Text("Saved")),
//	)
//
// SVG elements are ordinary elements whose attributes use their SVG
// names. nil children and empty attributes are skipped, so conditional
// markup composes with If, When and AttrIf.
//
// Nodes are rendered to markup by package render.
package vdom
