package headless

import (
	"strconv"

	"github.com/vango-dev/goey/pkg/layout"
)

// List is a host toast list. Style property writes on its items, and
// items being added or removed, are mutations its observers see.
type List struct {
	Gap float64

	items     []*Item
	observers map[int]func()
	nextObs   int
}

// Item is one slot of a List.
type Item struct {
	ID    string
	Toast *Toast

	list  *List
	props map[string]string
}

var (
	_ layout.Container = (*List)(nil)
	_ layout.Item      = (*Item)(nil)
	_ layout.Observer  = Observer{}
)

// NewList creates an empty list.
func NewList(gap float64) *List {
	return &List{Gap: gap, observers: make(map[int]func())}
}

// Add appends a toast, newest first.
func (l *List) Add(id string, t *Toast) *Item {
	it := &Item{ID: id, Toast: t, list: l, props: make(map[string]string)}
	l.items = append([]*Item{it}, l.items...)
	l.mutated()
	return it
}

// Remove drops a toast.
func (l *List) Remove(id string) bool {
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.mutated()
			return true
		}
	}
	return false
}

// Get returns an item by id.
func (l *List) Get(id string) (*Item, bool) {
	for _, it := range l.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Len is the number of items.
func (l *List) Len() int { return len(l.items) }

// Items implements layout.Container.
func (l *List) Items() []layout.Item {
	out := make([]layout.Item, len(l.items))
	for i, it := range l.items {
		out[i] = it
	}
	return out
}

// Restack is the host's own layout pass: it writes every item's stack
// offset from the heights it last saw. Like a real host it may also
// write a stale height hint for items it has not seen laid out.
func (l *List) Restack() {
	offset := 0.0
	for _, it := range l.items {
		it.props[layout.PropOffset] = px(offset)
		h, ok := parsePx(it.props[layout.PropInitialHeight])
		if !ok {
			h = it.ContentHeight()
			it.props[layout.PropInitialHeight] = px(h)
		}
		offset += h + l.Gap
	}
	l.mutated()
}

// ContentHeight implements layout.Item.
func (it *Item) ContentHeight() float64 {
	if it.Toast == nil {
		return 0
	}
	return it.Toast.Content.OffsetHeight()
}

// SetStyleProperty implements layout.Item.
func (it *Item) SetStyleProperty(name, value string) {
	if it.props[name] == value {
		return
	}
	it.props[name] = value
	if it.list != nil {
		it.list.mutated()
	}
}

// Property reads a style property.
func (it *Item) Property(name string) string { return it.props[name] }

func (l *List) mutated() {
	for _, fn := range l.observers {
		fn()
	}
}

// Observer observes Lists. Other containers are ignored.
type Observer struct{}

// Observe implements layout.Observer.
func (Observer) Observe(c layout.Container, fn func()) (stop func()) {
	l, ok := c.(*List)
	if !ok {
		return func() {}
	}
	id := l.nextObs
	l.nextObs++
	l.observers[id] = fn
	return func() { delete(l.observers, id) }
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
