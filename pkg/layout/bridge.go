package layout

import "log/slog"

// Bridge binds one toast to its host container.
type Bridge struct {
	container  Container
	logger     *slog.Logger
	unregister func()
}

// NewBridge registers a toast under container. r may be nil, in which
// case only explicit Sync calls write heights.
func NewBridge(r *Registry, container Container, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bridge{container: container, logger: logger}
	if r != nil && container != nil {
		b.unregister = r.Register(container, b.correct)
	}
	return b
}

// Sync writes the current heights after this toast's size changed.
func (b *Bridge) Sync() {
	if b == nil || b.container == nil {
		return
	}
	SyncHeights(b.container)
}

func (b *Bridge) correct() {
	if n := SyncHeights(b.container); n > 0 {
		b.logger.Debug("layout heights corrected", "items", n)
	}
}

// Close unregisters the toast.
func (b *Bridge) Close() {
	if b == nil || b.unregister == nil {
		return
	}
	b.unregister()
	b.unregister = nil
}
