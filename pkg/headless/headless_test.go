package headless

import (
	"testing"

	"github.com/vango-dev/goey/pkg/layout"
	"github.com/vango-dev/goey/pkg/measure"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/schedule"
)

func TestElementConstraintsOverrideNaturalSize(t *testing.T) {
	e := NewElement("content")
	e.SetNatural(300, 96)

	e.SetStyle(measure.PropWidth, "120px")
	e.SetStyle(measure.PropMaxHeight, "34px")
	if e.OffsetWidth() != 120 || e.OffsetHeight() != 34 {
		t.Errorf("constrained box = %vx%v", e.OffsetWidth(), e.OffsetHeight())
	}
	e.SetStyle(measure.PropMaxHeight, "200px")
	if e.OffsetHeight() != 96 {
		t.Errorf("max-height above natural = %v", e.OffsetHeight())
	}
	e.SetStyle(measure.PropWidth, "")
	if e.OffsetWidth() != 300 {
		t.Errorf("cleared width = %v", e.OffsetWidth())
	}
	if _, ok := e.Styles()[measure.PropWidth]; ok {
		t.Error("empty value should remove the property")
	}
}

func TestElementResizeNotifications(t *testing.T) {
	e := NewElement("content")
	n := 0
	stop := e.OnResize(func() { n++ })

	e.SetNatural(10, 10)
	e.SetNatural(10, 10)
	e.SetStyle(measure.PropWidth, "5px")
	if n != 1 {
		t.Errorf("notifications = %d, want 1", n)
	}
	stop()
	e.SetNatural(20, 20)
	if n != 1 || e.Observers() != 0 {
		t.Errorf("notified after stop: n=%d observers=%d", n, e.Observers())
	}
}

func TestTextMetricsBody(t *testing.T) {
	m := DefaultMetrics
	pw, ph := m.Body("Saved", "", "", false)
	if ph != m.PillHeight || pw != m.HeaderWidth("Saved")+2*m.PadX {
		t.Errorf("pill = %vx%v", pw, ph)
	}

	long := "Your changes have been published to every region and will be visible to all users shortly."
	w, h := m.Body("Saved", long, "Undo", true)
	if w > m.MaxBodyWidth || w <= pw {
		t.Errorf("body width = %v", w)
	}
	lines := len(m.Lines(long, m.MaxBodyWidth-2*m.PadX))
	if lines < 2 {
		t.Fatalf("long description did not wrap: %d lines", lines)
	}
	want := m.PillHeight + float64(lines)*m.LineHeight + m.PadBottom + m.ActionHeight + m.ActionGap
	if h != round2(want) {
		t.Errorf("body height = %v, want %v", h, want)
	}
}

func TestToastApply(t *testing.T) {
	ht := NewToast(DefaultMetrics)
	s := morph.Snapshot{Title: "Saved", Description: "Done.", ShowBody: true}
	ht.Apply(s)
	w, h := ht.Content.Natural()
	if h <= DefaultMetrics.PillHeight || w <= 0 {
		t.Errorf("expanded natural = %vx%v", w, h)
	}

	s.Dismissing = true
	ht.Apply(s)
	if _, h := ht.Content.Natural(); h != DefaultMetrics.PillHeight {
		t.Errorf("dismissing toast kept its body height: %v", h)
	}
	if !ht.Refs().Attached() {
		t.Error("refs not attached")
	}
}

func TestListWithLayoutRegistry(t *testing.T) {
	f := schedule.NewFake()
	list := NewList(14)
	reg := layout.NewRegistry(f, Observer{})

	a, b := NewToast(DefaultMetrics), NewToast(DefaultMetrics)
	a.Content.SetNatural(200, 34)
	b.Content.SetNatural(260, 90)
	list.Add("a", a)
	list.Add("b", b)

	bridge := layout.NewBridge(reg, list, nil)
	defer bridge.Close()

	list.Restack()
	itemB, _ := list.Get("b")
	if itemB.Property(layout.PropOffset) != "0px" {
		t.Errorf("newest toast offset = %q", itemB.Property(layout.PropOffset))
	}

	// The host wrote a stale hint; one frame later it is corrected.
	itemB.SetStyleProperty(layout.PropInitialHeight, "34px")
	f.AdvanceFrames(1)
	if got := itemB.Property(layout.PropInitialHeight); got != "90px" {
		t.Errorf("--initial-height = %q, want 90px", got)
	}

	if !list.Remove("a") || list.Remove("a") || list.Len() != 1 {
		t.Error("Remove")
	}
}
