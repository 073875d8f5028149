package layout

import (
	"math"
	"strconv"
)

// Style properties the host list reads.
const (
	// PropInitialHeight is the natural height hint written by toasts.
	PropInitialHeight = "--initial-height"
	// PropOffset is the stack offset. The host owns it.
	PropOffset = "--offset"
)

// Item is one toast slot in a host list.
type Item interface {
	// ContentHeight is the rendered height of the toast's content box.
	ContentHeight() float64
	SetStyleProperty(name, value string)
}

// Container is a host's toast list.
type Container interface {
	Items() []Item
}

// Observer passively watches a container for host mutations. fn runs
// after each batch of mutations until stop is called.
type Observer interface {
	Observe(c Container, fn func()) (stop func())
}

// SyncHeights writes every item's content height to --initial-height.
// Items that have not laid out yet are left alone.
func SyncHeights(c Container) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, it := range c.Items() {
		h := it.ContentHeight()
		if h <= 0 {
			continue
		}
		it.SetStyleProperty(PropInitialHeight, formatPx(h))
		n++
	}
	return n
}

func formatPx(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "px"
}
