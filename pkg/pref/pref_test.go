package pref

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	p := New("theme", "light")
	if p.Key() != "theme" {
		t.Errorf("Key() = %q, want theme", p.Key())
	}
	if p.Get() != "light" {
		t.Errorf("Get() = %q, want light", p.Get())
	}

	r := ReducedMotion()
	if r.Get() {
		t.Error("reduced motion should default to off")
	}
	if r.opts.policy != FollowReports {
		t.Errorf("policy = %v, want FollowReports", r.opts.policy)
	}
}

func TestSubscribe(t *testing.T) {
	p := New("reduced-motion", false)

	var got []bool
	stop := p.Subscribe(func(v bool) { got = append(got, v) })

	p.Set(true)
	p.Set(true) // unchanged
	p.Set(false)
	stop()
	stop()
	p.Set(true)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("notifications = %v, want [true false]", got)
	}
}

func TestReset(t *testing.T) {
	p := New("theme", "light", WithPolicy(KeepLocal))
	p.Set("dark")
	if p.Report("dim", time.Now()) {
		t.Error("report applied over a local value")
	}
	p.Reset()
	if p.Get() != "light" {
		t.Errorf("after Reset: %q, want light", p.Get())
	}
	if !p.Report("dim", time.Now()) || p.Get() != "dim" {
		t.Errorf("report after Reset not applied: %q", p.Get())
	}
}

func TestReport(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return base }

	tests := []struct {
		name   string
		policy Policy
		at     time.Time
		want   bool
	}{
		{"follow older", FollowReports, base.Add(-time.Hour), true},
		{"latest older", Latest, base.Add(-time.Hour), false},
		{"latest same instant", Latest, base, false},
		{"latest newer", Latest, base.Add(time.Second), true},
		{"keep local without set", KeepLocal, base.Add(-time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("reduced-motion", false, WithPolicy(tt.policy), WithClock(clock))
			notified := false
			p.Subscribe(func(bool) { notified = true })

			applied := p.Report(true, tt.at)
			if applied != tt.want || p.Get() != tt.want || notified != tt.want {
				t.Errorf("applied=%v value=%v notified=%v, want %v", applied, p.Get(), notified, tt.want)
			}
			if tt.want && !p.UpdatedAt().Equal(tt.at) {
				t.Errorf("UpdatedAt() = %v, want %v", p.UpdatedAt(), tt.at)
			}
		})
	}
}
