package geometry

import (
	"fmt"
	"math"
)

// Constraints are the layout limits applied to the toast wrapper and its
// content for a given morph progress. Zero widths and heights mean the
// property is cleared and the element sizes naturally.
type Constraints struct {
	WrapperWidth     float64
	ContentWidth     float64
	ContentMaxHeight float64
	Overflow         string
	ClipPath         string
	// ContentOffset shifts the content horizontally inside the wrapper.
	// Right-anchored toasts use it to keep the content's right edge on the
	// wrapper's right edge while the wrapper is narrower than the content.
	ContentOffset float64
}

// Unconstrained reports whether every constraint is cleared.
func (c Constraints) Unconstrained() bool {
	return c == Constraints{}
}

// WrapperStyle returns the wrapper's inline style properties. Empty
// values clear the property.
func (c Constraints) WrapperStyle() map[string]string {
	return map[string]string{"width": px(c.WrapperWidth)}
}

// ContentStyle returns the content block's inline style properties.
func (c Constraints) ContentStyle() map[string]string {
	return map[string]string{
		"width":       px(c.ContentWidth),
		"overflow":    c.Overflow,
		"max-height":  px(c.ContentMaxHeight),
		"clip-path":   c.ClipPath,
		"margin-left": signedPx(c.ContentOffset),
	}
}

// Constrain computes the constraints for progress t.
//
// anim is the currently rendered size, target the last measured natural
// size and full the stable width centered toasts lay out in (ignored for
// edge anchors). t is clamped to [0, 1] so spring overshoot never flips
// between regimes:
//
//   - t == 0: content is clipped to the pill
//   - 0 < t < 1: content is locked at its final width and clipped to the
//     interpolated shape so text never reflows mid-animation
//   - t == 1: every constraint is cleared
func Constrain(anim, target Dims, full, t float64, anchor Anchor) Constraints {
	t = math.Max(0, math.Min(1, t))
	pw := math.Min(anim.Pill, anim.Body)

	switch {
	case t >= 1:
		return Constraints{}

	case t > 0:
		w := pw + (anim.Body-pw)*t
		h := PillHeight + (target.Height-PillHeight)*t
		c := Constraints{
			WrapperWidth:     w,
			ContentWidth:     target.Body,
			ContentMaxHeight: h,
			Overflow:         "hidden",
		}
		switch anchor {
		case Center:
			c.WrapperWidth = full
			c.ContentWidth = full
			c.ClipPath = inset(0, (full-w)/2, 0, (full-w)/2)
		case EdgeRight:
			c.ContentOffset = w - target.Body
			c.ClipPath = inset(0, 0, 0, target.Body-w)
		default:
			c.ClipPath = inset(0, target.Body-w, 0, 0)
		}
		return c

	default:
		c := Constraints{
			WrapperWidth:     pw,
			ContentMaxHeight: PillHeight,
			Overflow:         "hidden",
		}
		if anchor == Center {
			c.WrapperWidth = full
			c.ContentWidth = full
			c.ClipPath = inset(0, (full-pw)/2, 0, (full-pw)/2)
		}
		return c
	}
}

// StableWidth is the width a centered toast lays out in: the widest of
// the measured body, the body at the moment collapse began and the pill.
func StableWidth(measured, expanded Dims, pill float64) float64 {
	return math.Max(math.Max(measured.Body, expanded.Body), pill)
}

func inset(top, right, bottom, left float64) string {
	return fmt.Sprintf("inset(%s %s %s %s)", pxOrZero(top), pxOrZero(right), pxOrZero(bottom), pxOrZero(left))
}

func pxOrZero(v float64) string {
	if v == 0 {
		return "0"
	}
	return formatNum(v) + "px"
}

func signedPx(v float64) string {
	if v == 0 {
		return ""
	}
	return formatNum(v) + "px"
}

func px(v float64) string {
	if v <= 0 {
		return ""
	}
	return formatNum(v) + "px"
}
