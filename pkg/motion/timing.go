package motion

import "time"

// Animation-feel constants. They are empirically tuned for a 34px pill
// and are not derived from each other.
const (
	ExpandDuration      = 600 * time.Millisecond
	CollapseDuration    = 900 * time.Millisecond
	MorphSpringDuration = 900 * time.Millisecond

	PillResizeSpringDuration = 500 * time.Millisecond
	PillResizeEasedDuration  = 400 * time.Millisecond
	PillResizeBounceScale    = 0.875

	RevealDelay       = 330 * time.Millisecond
	SquishThrottle    = 300 * time.Millisecond
	SquishMountDelay  = 45 * time.Millisecond
	SquishExpandDelay = 80 * time.Millisecond
	ShakeDuration     = 400 * time.Millisecond

	// SquishCooldownAfterCollapse suppresses the pill-resize squish right
	// after a collapse settles.
	SquishCooldownAfterCollapse = 500 * time.Millisecond

	DismissGrace       = 800 * time.Millisecond
	ActionDismissDelay = 1200 * time.Millisecond

	DefaultDisplayDuration = 4 * time.Second

	// ReducedCollapse replaces CollapseDuration under reduced motion.
	ReducedCollapse = 10 * time.Millisecond
)

// PreDismissDelay is how long an expanded toast stays open before its
// pre-dismiss collapse starts. A non-positive result means the toast is
// never auto-dismissed.
func PreDismissDelay(display time.Duration, reduced bool) time.Duration {
	reveal, collapse := RevealDelay, CollapseDuration
	if reduced {
		reveal, collapse = 0, ReducedCollapse
	}
	return display - reveal - collapse
}
