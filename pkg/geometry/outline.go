package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Op is an outline command, named after its SVG path letter.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpHLine Op = 'H'
	OpQuad  Op = 'Q'
	OpArc   Op = 'A'
	OpClose Op = 'Z'
)

// Segment is one outline command with its coordinates.
//
// Argument layout follows SVG: Move/Line (x, y), HLine (x),
// Quad (cx, cy, x, y), Arc (rx, ry, rotation, large, sweep, x, y).
type Segment struct {
	Op   Op
	Args []float64
}

// Outline is a closed sequence of segments.
type Outline []Segment

// String renders the outline as an SVG path "d" attribute.
func (o Outline) String() string {
	var sb strings.Builder
	for i, s := range o {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(s.Op))
		switch s.Op {
		case OpMove, OpLine:
			writePoint(&sb, s.Args[0], s.Args[1])
		case OpHLine:
			sb.WriteByte(' ')
			sb.WriteString(formatNum(s.Args[0]))
		case OpQuad:
			writePoint(&sb, s.Args[0], s.Args[1])
			writePoint(&sb, s.Args[2], s.Args[3])
		case OpArc:
			sb.WriteByte(' ')
			sb.WriteString(formatNum(s.Args[0]))
			sb.WriteByte(',')
			sb.WriteString(formatNum(s.Args[1]))
			sb.WriteByte(' ')
			sb.WriteString(formatNum(s.Args[2]))
			sb.WriteByte(' ')
			sb.WriteString(formatNum(s.Args[3]))
			sb.WriteByte(' ')
			sb.WriteString(formatNum(s.Args[4]))
			writePoint(&sb, s.Args[5], s.Args[6])
		}
	}
	return sb.String()
}

// Equal reports whether two outlines render identically.
func (o Outline) Equal(other Outline) bool {
	return o.String() == other.String()
}

// Bounds returns the extent of every end point and control point.
func (o Outline) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(x, y float64) {
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	var y float64
	for _, s := range o {
		switch s.Op {
		case OpMove, OpLine:
			add(s.Args[0], s.Args[1])
			y = s.Args[1]
		case OpHLine:
			add(s.Args[0], y)
		case OpQuad:
			add(s.Args[0], s.Args[1])
			add(s.Args[2], s.Args[3])
			y = s.Args[3]
		case OpArc:
			add(s.Args[5], s.Args[6])
			y = s.Args[6]
		}
	}
	if len(o) == 0 {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

// Mirror reflects the outline about the vertical line x = width/2.
// Arc sweep flags flip so every arc still bulges outward.
func (o Outline) Mirror(width float64) Outline {
	out := make(Outline, len(o))
	for i, s := range o {
		args := append([]float64(nil), s.Args...)
		switch s.Op {
		case OpMove, OpLine, OpHLine:
			args[0] = width - args[0]
		case OpQuad:
			args[0] = width - args[0]
			args[2] = width - args[2]
		case OpArc:
			args[4] = 1 - args[4]
			args[5] = width - args[5]
		}
		out[i] = Segment{Op: s.Op, Args: args}
	}
	return out
}

func writePoint(sb *strings.Builder, x, y float64) {
	sb.WriteByte(' ')
	sb.WriteString(formatNum(x))
	sb.WriteByte(',')
	sb.WriteString(formatNum(y))
}

// formatNum rounds to three decimals and never prints -0.
func formatNum(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// builder accumulates segments; every arc is a clockwise quarter arc.
type builder struct {
	out Outline
}

func (b *builder) move(x, y float64) { b.add(OpMove, x, y) }
func (b *builder) line(x, y float64) { b.add(OpLine, x, y) }
func (b *builder) hline(x float64)   { b.add(OpHLine, x) }
func (b *builder) close()            { b.add(OpClose) }

func (b *builder) quad(cx, cy, x, y float64) { b.add(OpQuad, cx, cy, x, y) }

func (b *builder) arc(rx, ry, x, y float64) { b.add(OpArc, rx, ry, 0, 0, 1, x, y) }

func (b *builder) add(op Op, args ...float64) {
	b.out = append(b.out, Segment{Op: op, Args: args})
}
