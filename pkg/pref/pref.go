// Package pref holds runtime preferences that mounted toasts follow, such
// as the system reduced-motion setting.
//
//	reduced := pref.ReducedMotion()
//	stop := reduced.Subscribe(func(on bool) { ctrl.SetReducedMotion(on) })
//	defer stop()
//
//	// A client reports its prefers-reduced-motion media query:
//	reduced.Report(true, reportedAt)
package pref

import (
	"sync"
	"time"
)

// Policy decides whether a reported value replaces the current one.
type Policy int

const (
	// Latest applies a report only if it is newer than the last change.
	Latest Policy = iota

	// FollowReports always applies reports. Use it for values mirroring
	// a system setting.
	FollowReports

	// KeepLocal ignores reports once Set has been called.
	KeepLocal
)

// Option configures a Pref.
type Option func(*options)

type options struct {
	policy Policy
	now    func() time.Time
}

// WithPolicy sets how reports are reconciled.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithClock stamps local changes with now instead of time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Pref is a value with change subscribers.
type Pref[T comparable] struct {
	key  string
	def  T
	opts options

	mu      sync.Mutex
	value   T
	changed time.Time
	local   bool
	subs    map[int]func(T)
	next    int
}

// New creates a preference holding def.
func New[T comparable](key string, def T, opts ...Option) *Pref[T] {
	o := options{policy: Latest, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pref[T]{
		key:     key,
		def:     def,
		opts:    o,
		value:   def,
		changed: o.now(),
		subs:    make(map[int]func(T)),
	}
}

// ReducedMotion is the reduced-motion preference, off until reported.
func ReducedMotion(opts ...Option) *Pref[bool] {
	return New("reduced-motion", false, append([]Option{WithPolicy(FollowReports)}, opts...)...)
}

// Key names the preference.
func (p *Pref[T]) Key() string { return p.key }

// Get returns the current value.
func (p *Pref[T]) Get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// UpdatedAt is when the value last changed.
func (p *Pref[T]) UpdatedAt() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.changed
}

// Set changes the value locally.
func (p *Pref[T]) Set(v T) {
	p.mu.Lock()
	p.local = true
	p.update(v, p.opts.now())
}

// Reset restores the default and forgets any local Set.
func (p *Pref[T]) Reset() {
	p.mu.Lock()
	p.local = false
	p.update(p.def, p.opts.now())
}

// Report offers a value observed elsewhere at time at. It reports whether
// the value was applied under the preference's policy.
func (p *Pref[T]) Report(v T, at time.Time) bool {
	p.mu.Lock()
	switch p.opts.policy {
	case KeepLocal:
		if p.local {
			p.mu.Unlock()
			return false
		}
	case Latest:
		if !at.After(p.changed) {
			p.mu.Unlock()
			return false
		}
	}
	p.update(v, at)
	return true
}

// update stores v and notifies subscribers when it differs. It is called
// with p.mu held and releases it.
func (p *Pref[T]) update(v T, at time.Time) {
	if v == p.value {
		p.mu.Unlock()
		return
	}
	p.value = v
	p.changed = at
	subs := make([]func(T), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe runs fn after every change, on the goroutine that made it.
func (p *Pref[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.next
	p.next++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}
