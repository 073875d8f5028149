// Package layout keeps a host's toast list informed of each toast's true
// height.
//
// Hosts position stacked toasts from a per-item custom property,
// --initial-height. Toasts change size while they morph, and host
// re-renders can write stale heights back. Every toast under one
// container shares a single Observer subscription through a Registry;
// mutations schedule one correction pass per frame that runs every
// registered callback, and the latch that suppresses the pass's own
// writes is released a frame later.
//
//	bridge := layout.NewBridge(registry, container, logger)
//	defer bridge.Close()
//	controller.OnSettle(bridge.Sync)
package layout
