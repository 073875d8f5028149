package motion

import (
	"testing"
	"time"

	"github.com/vango-dev/goey/pkg/schedule"
)

type recordingMonitor struct {
	started, superseded []string
}

func (m *recordingMonitor) AnimationStarted(kind string) { m.started = append(m.started, kind) }
func (m *recordingMonitor) AnimationSuperseded(kind string) {
	m.superseded = append(m.superseded, kind)
}

func TestDriverRunsToCompletion(t *testing.T) {
	f := schedule.NewFake()
	d := NewDriver(f)

	var ticks []float64
	completed := 0
	d.Animate(KindExpand, 0, 1, Smooth(160*time.Millisecond),
		func(v float64) { ticks = append(ticks, v) },
		func() { completed++ })

	if k, ok := d.Active(); !ok || k != KindExpand {
		t.Fatalf("Active = %v %v", k, ok)
	}
	f.AdvanceFrames(20)

	if completed != 1 {
		t.Fatalf("completed %d times, want 1", completed)
	}
	if ticks[len(ticks)-1] != 1 {
		t.Errorf("last tick = %v, want 1", ticks[len(ticks)-1])
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] < ticks[i-1] {
			t.Errorf("eased ticks not monotonic at %d: %v", i, ticks)
		}
	}
	if _, ok := d.Active(); ok {
		t.Error("driver still active after completion")
	}
	if f.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", f.Pending())
	}
}

func TestDriverInstantCompletesInOneFrame(t *testing.T) {
	f := schedule.NewFake()
	d := NewDriver(f)
	done := false
	d.Animate(KindExpand, 0, 1, Instant(), nil, func() { done = true })
	f.AdvanceFrames(1)
	if !done || d.Value() != 1 {
		t.Errorf("done=%v value=%v", done, d.Value())
	}
}

func TestDriverSupersede(t *testing.T) {
	f := schedule.NewFake()
	m := &recordingMonitor{}
	d := NewDriver(f, WithMonitor(m))

	firstDone := false
	d.Animate(KindExpand, 0, 1, Smooth(time.Second), nil, func() { firstDone = true })
	f.AdvanceFrames(5)
	mid := d.Value()

	secondDone := false
	d.Animate(KindCollapse, mid, 0, Smooth(100*time.Millisecond), nil, func() { secondDone = true })
	f.Advance(2 * time.Second)

	if firstDone {
		t.Error("superseded animation completed")
	}
	if !secondDone || d.Value() != 0 {
		t.Errorf("second done=%v value=%v", secondDone, d.Value())
	}
	if len(m.started) != 2 || len(m.superseded) != 1 || m.superseded[0] != "expand" {
		t.Errorf("monitor = %+v", m)
	}
}

func TestDriverStop(t *testing.T) {
	f := schedule.NewFake()
	d := NewDriver(f)
	ticks := 0
	d.Animate(KindSquish, 0, 1, Smooth(time.Second), func(float64) { ticks++ }, nil)
	f.AdvanceFrames(2)
	d.Stop()
	before := ticks
	f.AdvanceFrames(10)
	if ticks != before {
		t.Errorf("ticks after Stop: %d -> %d", before, ticks)
	}
	if f.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", f.Pending())
	}
}

func TestDriverRestartFromCompletion(t *testing.T) {
	f := schedule.NewFake()
	d := NewDriver(f)
	var kinds []Kind
	d.Animate(KindExpand, 0, 1, Instant(), nil, func() {
		kinds = append(kinds, KindExpand)
		d.Animate(KindCollapse, 1, 0, Instant(), nil, func() {
			kinds = append(kinds, KindCollapse)
		})
	})
	f.AdvanceFrames(3)
	if len(kinds) != 2 || d.Value() != 0 {
		t.Errorf("kinds=%v value=%v", kinds, d.Value())
	}
}
