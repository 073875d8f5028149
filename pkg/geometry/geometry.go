package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/vango-dev/goey/internal/errors"
)

// Shape constants shared by every outline.
const (
	// PillHeight is the fixed height of the collapsed pill.
	PillHeight = 34.0

	// MinGrowth is the body growth below which only the pill is drawn.
	MinGrowth = 8.0

	// MaxCornerRadius caps the radius of the body corners.
	MaxCornerRadius = 16.0

	// CornerFactor scales body growth into a corner radius.
	CornerFactor = 0.45

	// CurveSweep is the pill-to-body junction curve size at full progress.
	CurveSweep = 14.0
)

// Anchor selects where the pill sits relative to the growing body.
type Anchor uint8

const (
	EdgeLeft Anchor = iota
	EdgeRight
	Center
)

// String returns the string representation of the Anchor.
func (a Anchor) String() string {
	switch a {
	case EdgeLeft:
		return "edge-left"
	case EdgeRight:
		return "edge-right"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAnchor parses the output of Anchor.String.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "edge-left", "left":
		return EdgeLeft, nil
	case "edge-right", "right":
		return EdgeRight, nil
	case "center":
		return Center, nil
	}
	return EdgeLeft, fmt.Errorf("geometry: %w", errors.New("G031").WithDetailf("%q", s))
}

// AnchorForPosition maps a toaster position such as "bottom-right" to the
// anchor its toasts morph from.
func AnchorForPosition(position string) Anchor {
	switch {
	case strings.Contains(position, "center"):
		return Center
	case strings.Contains(position, "right"):
		return EdgeRight
	default:
		return EdgeLeft
	}
}

// Dims is a pill width, body width and body height triple in pixels.
type Dims struct {
	Pill   float64
	Body   float64
	Height float64
}

// Valid reports whether all three dimensions are positive.
func (d Dims) Valid() bool {
	return d.Pill > 0 && d.Body > 0 && d.Height > 0
}

// Lerp interpolates from a to b.
func Lerp(a, b Dims, t float64) Dims {
	return Dims{
		Pill:   a.Pill + (b.Pill-a.Pill)*t,
		Body:   a.Body + (b.Body-a.Body)*t,
		Height: a.Height + (b.Height-a.Height)*t,
	}
}

// Morph returns the outline for morph progress t.
//
// pillW is the natural pill width, bodyW and bodyH the fully expanded
// size. For Center, bodyW is also the width the pill is centered in, so
// callers pass the stable full width rather than an interpolated one.
func Morph(pillW, bodyW, bodyH, t float64, anchor Anchor) Outline {
	pw := math.Min(pillW, bodyW)
	h := PillHeight + (bodyH-PillHeight)*t

	if t <= 0 || h-PillHeight < MinGrowth {
		return Pill(pillW, bodyW, anchor)
	}

	curve := CurveSweep * t
	cr := math.Min(MaxCornerRadius, (h-PillHeight)*CornerFactor)
	top := PillHeight - curve

	if anchor == Center {
		return centerBlob(pw, bodyW, h, t, curve, cr, top)
	}

	w := pw + (bodyW-pw)*t
	qx := math.Min(pw+curve, w-cr)
	pr := PillHeight / 2

	var b builder
	b.move(0, pr)
	b.arc(pr, pr, 0, pr)
	b.hline(pw - pr)
	b.arc(pr, pr, pw, pr)
	b.line(pw, top)
	b.quad(pw, top+curve, qx, top+curve)
	b.hline(w - cr)
	b.arc(cr, cr, w, top+curve+cr)
	b.line(w, h-cr)
	b.arc(cr, cr, w-cr, h)
	b.hline(cr)
	b.arc(cr, cr, 0, h-cr)
	b.close()

	if anchor == EdgeRight {
		return b.out.Mirror(w)
	}
	return b.out
}

// Pill returns the plain capsule outline for the given anchor.
func Pill(pillW, bodyW float64, anchor Anchor) Outline {
	pw := math.Min(pillW, bodyW)
	pr := PillHeight / 2

	off := 0.0
	if anchor == Center {
		off = (bodyW - pw) / 2
	}

	var b builder
	b.move(off, pr)
	b.arc(pr, pr, off+pr, 0)
	b.hline(off + pw - pr)
	b.arc(pr, pr, off+pw, pr)
	b.arc(pr, pr, off+pw-pr, PillHeight)
	b.hline(off + pr)
	b.arc(pr, pr, off, pr)
	b.close()

	if anchor == EdgeRight {
		return b.out.Mirror(pw)
	}
	return b.out
}

// centerBlob draws the symmetric variant. The pill keeps its final
// centered offset for every t.
func centerBlob(pw, bodyW, h, t, curve, cr, top float64) Outline {
	pr := PillHeight / 2
	off := (bodyW - pw) / 2

	mid := bodyW / 2
	half := pw/2 + ((bodyW-pw)/2)*t
	left := mid - half
	right := mid + half

	qLeft := math.Max(left+cr, off-curve)
	qRight := math.Min(right-cr, off+pw+curve)

	var b builder
	b.move(off, pr)
	b.arc(pr, pr, off+pr, 0)
	b.hline(off + pw - pr)
	b.arc(pr, pr, off+pw, pr)
	b.line(off+pw, top)
	b.quad(off+pw, top+curve, qRight, top+curve)
	b.hline(right - cr)
	b.arc(cr, cr, right, top+curve+cr)
	b.line(right, h-cr)
	b.arc(cr, cr, right-cr, h)
	b.hline(left + cr)
	b.arc(cr, cr, left, h-cr)
	b.line(left, top+curve+cr)
	b.arc(cr, cr, left+cr, top+curve)
	b.hline(qLeft)
	b.quad(off, top+curve, off, top)
	b.close()
	return b.out
}
