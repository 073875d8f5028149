package toast

import "github.com/vango-dev/goey/pkg/morph"

// Handle refers to one shown toast.
type Handle struct {
	t  *Toaster
	id string
}

// ID is the toast id.
func (h *Handle) ID() string { return h.id }

// Success moves the toast to the success phase in place.
func (h *Handle) Success(title string, opts ...Option) *Handle {
	return h.t.show(morph.PhaseSuccess, title, append(opts, WithID(h.id)))
}

// Error moves the toast to the error phase in place.
func (h *Handle) Error(title string, opts ...Option) *Handle {
	return h.t.show(morph.PhaseError, title, append(opts, WithID(h.id)))
}

// Update replaces the toast's phase and content in place.
func (h *Handle) Update(phase morph.Phase, title string, opts ...Option) *Handle {
	return h.t.show(phase, title, append(opts, WithID(h.id)))
}

// Dismiss dismisses the toast.
func (h *Handle) Dismiss() { h.t.Dismiss(h.id) }
