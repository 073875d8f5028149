package morph

import (
	"fmt"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/vdom"
)

// Phase selects a toast's icon and colors.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseDefault Phase = "default"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
	PhaseWarning Phase = "warning"
	PhaseInfo    Phase = "info"
)

// Phases lists every phase in display order.
var Phases = []Phase{PhaseLoading, PhaseDefault, PhaseSuccess, PhaseError, PhaseWarning, PhaseInfo}

// ParsePhase parses a phase name.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if string(p) == s {
			return p, nil
		}
	}
	return PhaseDefault, fmt.Errorf("morph: %w", errors.New("G032").WithDetailf("%q", s))
}

// Action is an optional button shown in the expanded body.
type Action struct {
	Label   string
	OnClick func()
	// SuccessLabel, when set, replaces the title on click and morphs the
	// toast back to a success pill.
	SuccessLabel string
}

// Content is what a toast displays. Body is optional rich description
// content; when both are set Body is rendered and Description is used for
// measurement and accessibility.
type Content struct {
	Phase       Phase
	Title       string
	Description string
	Body        vdom.Component
	Action      *Action
}

// HasDescription reports whether there is description content.
func (c Content) HasDescription() bool {
	return c.Description != "" || c.Body != nil
}

// Expandable reports whether the content has a body to expand into.
func (c Content) Expandable() bool {
	return c.HasDescription() || c.Action != nil
}
