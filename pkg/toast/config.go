package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/motion"
)

// Position is where the toast list sits on screen.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Positions lists every position.
var Positions = []Position{TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight}

// ParsePosition parses a position name.
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("toast: %w", errors.New("G030").WithDetailf("%q", s).
		WithSuggestion("Use one of: "+joinPositions()))
}

// Anchor is the morph anchor for toasts at p.
func (p Position) Anchor() geometry.Anchor {
	return geometry.AnchorForPosition(string(p))
}

func joinPositions() string {
	names := make([]string, len(Positions))
	for i, p := range Positions {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Theme selects default colors.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Default fills per theme.
const (
	LightFill = "#ffffff"
	DarkFill  = "#1c1c1e"
)

// Config is a Toaster's global configuration. Per-call options override
// Spring, Bounce, DisplayDuration and FillColor.
type Config struct {
	Position        Position
	Gap             float64
	Offset          string
	VisibleToasts   int
	Spring          bool
	Bounce          float64
	Theme           Theme
	DisplayDuration time.Duration
	// FillColor overrides the theme's fill.
	FillColor string
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{
		Position:        BottomRight,
		Gap:             14,
		Offset:          "24px",
		VisibleToasts:   3,
		Spring:          true,
		Bounce:          motion.DefaultBounce,
		Theme:           ThemeLight,
		DisplayDuration: motion.DefaultDisplayDuration,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := ParsePosition(string(c.Position)); err != nil {
		return err
	}
	invalid := func(detail string) error {
		return fmt.Errorf("toast: %w", errors.New("G010").WithDetail(detail))
	}
	switch {
	case c.Gap < 0:
		return invalid("gap must not be negative")
	case c.VisibleToasts < 1:
		return invalid("visibleToasts must be at least 1")
	case c.Bounce < motion.MinBounce || c.Bounce > motion.MaxBounce:
		return invalid(fmt.Sprintf("bounce %.2f outside [%.2f, %.2f]", c.Bounce, motion.MinBounce, motion.MaxBounce))
	case c.DisplayDuration < 0:
		return invalid("displayDuration must not be negative")
	case c.Theme != ThemeLight && c.Theme != ThemeDark:
		return invalid(fmt.Sprintf("unknown theme %q", c.Theme))
	}
	return nil
}

// Fill is the fill color toasts use unless overridden per call.
func (c Config) Fill() string {
	if c.FillColor != "" {
		return c.FillColor
	}
	if c.Theme == ThemeDark {
		return DarkFill
	}
	return LightFill
}
