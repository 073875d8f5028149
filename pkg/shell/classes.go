package shell

import "github.com/vango-dev/goey/pkg/morph"

// Class names the stylesheet defines.
const (
	ClassWrapper         = "goey-wrapper"
	ClassBlob            = "goey-blob"
	ClassContent         = "goey-content"
	ClassContentCompact  = "goey-content-compact"
	ClassContentExpanded = "goey-content-expanded"
	ClassHeader          = "goey-header"
	ClassIcon            = "goey-icon"
	ClassSpinner         = "goey-spinner"
	ClassTitle           = "goey-title"
	ClassDescription     = "goey-description"
	ClassActionWrapper   = "goey-action-wrapper"
	ClassAction          = "goey-action"
)

// ClassNames are per-toast class overrides appended to the built-in
// classes of each part.
type ClassNames struct {
	Wrapper       string `json:"wrapper,omitempty"`
	Content       string `json:"content,omitempty"`
	Header        string `json:"header,omitempty"`
	Title         string `json:"title,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Description   string `json:"description,omitempty"`
	ActionWrapper string `json:"actionWrapper,omitempty"`
	ActionButton  string `json:"actionButton,omitempty"`
}

// TitleClass is the header color class for a phase.
func TitleClass(p morph.Phase) string {
	return "goey-title-" + string(p)
}

// ActionClass is the action button color class for a phase. Loading
// toasts use the info colors.
func ActionClass(p morph.Phase) string {
	if p == morph.PhaseLoading {
		p = morph.PhaseInfo
	}
	return "goey-action-" + string(p)
}

// RequiredClasses lists every class Render can emit, in a stable order.
func RequiredClasses() []string {
	out := []string{
		ClassWrapper, ClassBlob, ClassContent, ClassContentCompact,
		ClassContentExpanded, ClassHeader, ClassIcon, ClassSpinner,
		ClassTitle, ClassDescription, ClassActionWrapper, ClassAction,
	}
	for _, p := range morph.Phases {
		out = append(out, TitleClass(p))
	}
	seen := map[string]bool{}
	for _, p := range morph.Phases {
		if c := ActionClass(p); !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
