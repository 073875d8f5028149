package motion

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tanema/gween/ease"
)

// SquishKind selects squish magnitudes.
type SquishKind int

const (
	SquishMount SquishKind = iota
	SquishExpand
	SquishCollapse
)

// Scale is a 2D scale factor.
type Scale struct {
	X, Y float64
}

// Identity is the unscaled state.
var Identity = Scale{X: 1, Y: 1}

// Transform renders s as a CSS transform.
func (s Scale) Transform() string {
	if s == Identity {
		return "none"
	}
	return "scaleX(" + ftoa(s.X) + ") scaleY(" + ftoa(s.Y) + ")"
}

// Squish returns the squash-and-stretch scale at progress v in [0, 1].
// Intensity follows sin(vπ), returning to identity at both ends.
func Squish(kind SquishKind, bounce, v float64) Scale {
	compress, widen := 0.12, 0.06
	if kind == SquishCollapse {
		compress, widen = 0.07, 0.035
	}
	f := bounce / DefaultBounce
	intensity := math.Sin(clamp01(v) * math.Pi)
	return Scale{
		X: 1 + widen*f*intensity,
		Y: 1 - compress*f*intensity,
	}
}

// Shake returns the horizontal error-shake offset in pixels at v. It
// decays to zero.
func Shake(v float64) float64 {
	v = clamp01(v)
	return math.Sin(v*math.Pi*6) * (1 - v) * 3
}

// ShakeTransition is the progress curve driving Shake.
func ShakeTransition() Transition {
	return Eased(ShakeDuration, ease.OutQuad)
}

// HeaderSquish returns the header scale and vertical push at v.
func HeaderSquish(v float64) (scale, pushY float64) {
	v = clamp01(v)
	return 1 - 0.05*v, v
}

// HeaderTransform renders the header squish as a CSS transform.
func HeaderTransform(v float64) string {
	if v == 0 {
		return "none"
	}
	scale, push := HeaderSquish(v)
	return fmt.Sprintf("scale(%s) translateY(%spx)", ftoa(scale), ftoa(push))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func ftoa(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
