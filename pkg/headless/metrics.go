package headless

import (
	"math"
	"strings"
	"unicode/utf8"
)

// TextMetrics sizes toast parts from their text.
type TextMetrics struct {
	FontSize   float64
	CharWidth  float64 // advance per character, as a fraction of FontSize
	LineHeight float64
	PadX       float64 // per side
	PadBottom  float64
	IconSize   float64
	IconGap    float64
	// MaxBodyWidth caps the expanded width; descriptions wrap inside it.
	MaxBodyWidth float64
	ActionHeight float64
	ActionGap    float64
	PillHeight   float64
}

// DefaultMetrics approximates a 13px system font.
var DefaultMetrics = TextMetrics{
	FontSize:     13,
	CharWidth:    0.55,
	LineHeight:   19,
	PadX:         10,
	PadBottom:    10,
	IconSize:     18,
	IconGap:      8,
	MaxBodyWidth: 320,
	ActionHeight: 30,
	ActionGap:    10,
	PillHeight:   34,
}

// TextWidth is the width of s on one line.
func (m TextMetrics) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * m.FontSize * m.CharWidth
}

// HeaderWidth is the width of icon, gap and title.
func (m TextMetrics) HeaderWidth(title string) float64 {
	return round2(m.IconSize + m.IconGap + m.TextWidth(title))
}

// Lines word-wraps s to width.
func (m TextMetrics) Lines(s string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if m.TextWidth(line+" "+w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// Body is the natural content box of a toast.
func (m TextMetrics) Body(title, description, action string, showBody bool) (w, h float64) {
	pill := m.HeaderWidth(title) + 2*m.PadX
	if !showBody || (description == "" && action == "") {
		return pill, m.PillHeight
	}

	inner := m.MaxBodyWidth - 2*m.PadX
	lines := m.Lines(description, inner)
	widest := 0.0
	for _, l := range lines {
		widest = math.Max(widest, m.TextWidth(l))
	}
	if action != "" {
		widest = math.Max(widest, m.TextWidth(action)+24)
	}
	w = math.Max(pill, math.Min(widest+2*m.PadX, m.MaxBodyWidth))
	h = m.PillHeight + float64(len(lines))*m.LineHeight + m.PadBottom
	if action != "" {
		h += m.ActionHeight + m.ActionGap
	}
	return round2(w), round2(h)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
