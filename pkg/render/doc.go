// Package render serializes vdom trees to HTML with inline SVG.
//
// Text and attribute values are escaped; KindRaw nodes are written
// verbatim and must only carry trusted markup. Attributes are written in
// name order so output is deterministic and diffable, which the export
// and preview tooling rely on.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
package render
