package shell

import (
	"github.com/vango-dev/goey/pkg/morph"
	. "github.com/vango-dev/goey/pkg/vdom"
)

// IconSize is the rendered icon size in pixels.
const IconSize = 18

const svgNS = "http://www.w3.org/2000/svg"

func icon(viewBox float64, children ...any) *VNode {
	args := []any{
		Xmlns(svgNS),
		Width(IconSize), Height(IconSize),
		ViewBox(0, 0, viewBox, viewBox),
		Fill("none"),
		AriaHidden(true),
	}
	return Svg(append(args, children...)...)
}

func strokeIcon(children ...any) *VNode {
	args := []any{
		Stroke("currentColor"), StrokeWidth(2),
		StrokeLinecap("round"), StrokeLinejoin("round"),
	}
	return icon(24, append(args, children...)...)
}

// Spinner is the loading icon. The stylesheet spins ClassSpinner.
func Spinner() *VNode {
	n := icon(20, Path(
		D("M10 2C5.58172 2 2 5.58172 2 10C2 14.4183 5.58172 18 10 18C14.4183 18 18 14.4183 18 10"),
		Stroke("currentColor"), StrokeWidth(2), StrokeLinecap("round"),
	))
	n.Props["class"] = ClassSpinner
	return n
}

// PhaseIcon returns the built-in icon for a phase.
func PhaseIcon(p morph.Phase) *VNode {
	switch p {
	case morph.PhaseLoading:
		return Spinner()
	case morph.PhaseSuccess:
		return strokeIcon(Circle(Cx(12), Cy(12), R(10)), Path(D("M9 12l2 2 4-4")))
	case morph.PhaseError:
		return strokeIcon(Circle(Cx(12), Cy(12), R(10)), Path(D("M15 9l-6 6")), Path(D("M9 9l6 6")))
	case morph.PhaseWarning:
		return icon(20, Path(D("M1 17H19L10 1L1 17ZM11 14H9V12H11V14ZM11 10H9V6H11V10Z"), Fill("currentColor")))
	case morph.PhaseInfo:
		return strokeIcon(Circle(Cx(12), Cy(12), R(10)), Path(D("M12 16v-4")), Path(D("M12 8h.01")))
	default:
		return strokeIcon(Path(D("M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9")), Path(D("M10.3 21a1.94 1.94 0 0 0 3.4 0")))
	}
}
