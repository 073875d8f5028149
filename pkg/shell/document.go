package shell

import (
	. "github.com/vango-dev/goey/pkg/vdom"
)

// Document is a standalone SVG document of one outline, sized w by h.
// It is what the preview server and the frame exporter write.
func Document(d string, w, h float64, fill, border string, borderWidth float64) *VNode {
	if fill == "" {
		fill = DefaultFill
	}
	stroke := "none"
	if border != "" {
		stroke = border
		if borderWidth == 0 {
			borderWidth = DefaultBorderWidth
		}
	} else {
		borderWidth = 0
	}
	pad := borderWidth / 2
	return Svg(
		Xmlns(svgNS),
		ViewBox(-pad, -pad, w+2*pad, h+2*pad),
		Width(w+2*pad),
		Height(h+2*pad),
		Path(AttrIf(d != "", D(d)), Fill(fill), Stroke(stroke), StrokeWidth(borderWidth)),
	)
}
