package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (G001-G009)
	// ============================================

	"G001": {
		Category: CategoryRuntime,
		Message:  "Measurement refs not attached",
		Detail:   "The toast's header or content element is not mounted yet. Measurement is skipped until the next pass.",
	},
	"G002": {
		Category: CategoryRuntime,
		Message:  "Toast content render failed",
		Detail:   "Rendering the toast's description or action panicked. The toast renders nothing instead.",
	},
	"G003": {
		Category: CategoryRuntime,
		Message:  "Action handler failed",
		Detail:   "The action's click handler panicked. The success morph-back continues.",
	},
	"G004": {
		Category: CategoryRuntime,
		Message:  "Promise operation panicked",
		Detail:   "The tracked operation panicked. Its toast moves to the error phase.",
	},

	// ============================================
	// Config Errors (G010-G019)
	// ============================================

	"G010": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	"G011": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "goey.json exists but could not be read or parsed.",
	},

	// ============================================
	// Export Errors (G020-G029)
	// ============================================

	"G020": {
		Category: CategoryExport,
		Message:  "Frame export failed",
	},
	"G021": {
		Category: CategoryExport,
		Message:  "Unknown export store",
		Detail:   "Frames can be written to a directory or to an S3 bucket.",
	},

	// ============================================
	// Validation Errors (G030-G039)
	// ============================================

	"G030": {
		Category: CategoryValidation,
		Message:  "Unknown position",
		Detail:   "Positions are top-left, top-center, top-right, bottom-left, bottom-center and bottom-right.",
	},
	"G031": {
		Category: CategoryValidation,
		Message:  "Unknown anchor",
		Detail:   "Anchors are left, right and center.",
	},
	"G032": {
		Category: CategoryValidation,
		Message:  "Unknown phase",
		Detail:   "Phases are loading, default, success, error, warning and info.",
	},
}

// Sentinels for errors.Is checks. They match any error of the same code.
var (
	ErrRefsNotAttached = &GoeyError{Code: "G001"}
	ErrContentRender   = &GoeyError{Code: "G002"}
	ErrActionFailed    = &GoeyError{Code: "G003"}
	ErrPromisePanic    = &GoeyError{Code: "G004"}
	ErrInvalidConfig   = &GoeyError{Code: "G010"}
	ErrConfigRead      = &GoeyError{Code: "G011"}
	ErrExport          = &GoeyError{Code: "G020"}
	ErrUnknownStore    = &GoeyError{Code: "G021"}
	ErrUnknownPosition = &GoeyError{Code: "G030"}
	ErrUnknownAnchor   = &GoeyError{Code: "G031"}
	ErrUnknownPhase    = &GoeyError{Code: "G032"}
)

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
