package morph

import (
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/goey/pkg/measure"
	"github.com/vango-dev/goey/pkg/motion"
	"github.com/vango-dev/goey/pkg/schedule"
)

type fakeElement struct {
	styles map[string]string
	attrs  map[string]string
	w, h   float64
	pad    float64
}

func newFakeElement(w, h float64) *fakeElement {
	return &fakeElement{styles: map[string]string{}, attrs: map[string]string{}, w: w, h: h}
}

func (e *fakeElement) Style(prop string) string { return e.styles[prop] }
func (e *fakeElement) SetStyle(prop, value string) {
	if value == "" {
		delete(e.styles, prop)
		return
	}
	e.styles[prop] = value
}
func (e *fakeElement) SetAttribute(name, value string) { e.attrs[name] = value }
func (e *fakeElement) OffsetWidth() float64            { return e.w }
func (e *fakeElement) OffsetHeight() float64           { return e.h }
func (e *fakeElement) PaddingX() float64               { return e.pad }

// fakeToast resizes its content the way a browser would when the body is
// shown or hidden.
type fakeToast struct {
	wrapper, header, content, path *fakeElement
	snaps                          []Snapshot
	dismissed                      []DismissReason
	settled                        int
}

func newFakeToast() *fakeToast {
	ft := &fakeToast{
		wrapper: newFakeElement(0, 0),
		header:  newFakeElement(100, 34),
		content: newFakeElement(120, 34),
		path:    newFakeElement(0, 0),
	}
	ft.content.pad = 20
	return ft
}

func (ft *fakeToast) refs() measure.Refs {
	return measure.Refs{Wrapper: ft.wrapper, Header: ft.header, Content: ft.content, Path: ft.path}
}

func (ft *fakeToast) attach(c *Controller) {
	c.OnChange(func(s Snapshot) {
		ft.snaps = append(ft.snaps, s)
		if s.ShowBody {
			ft.content.w, ft.content.h = 300, 96
		} else {
			ft.content.w, ft.content.h = 120, 34
		}
	})
	c.OnDismiss(func(r DismissReason) { ft.dismissed = append(ft.dismissed, r) })
	c.OnSettle(func() { ft.settled++ })
	c.Mount(ft.refs(), nil)
}

func expandable() Content {
	return Content{Phase: PhaseSuccess, Title: "Saved", Description: "Your changes are live."}
}

func newTestController(t *testing.T, content Content, mutate func(*Settings)) (*schedule.Fake, *Controller, *fakeToast) {
	t.Helper()
	f := schedule.NewFake()
	set := DefaultSettings()
	if mutate != nil {
		mutate(&set)
	}
	c := New(f, content, set)
	ft := newFakeToast()
	ft.attach(c)
	return f, c, ft
}

func TestExpandRevealsAfterDelayAndSettles(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), nil)

	f.Advance(300 * time.Millisecond)
	if c.Snapshot().ShowBody {
		t.Fatal("body shown before reveal delay")
	}
	f.Advance(40 * time.Millisecond)
	if !c.Snapshot().ShowBody {
		t.Fatal("body not shown after reveal delay")
	}

	f.Advance(2 * time.Second)
	s := c.Snapshot()
	if s.State != StateExpanded || s.Progress != 1 {
		t.Fatalf("state=%v progress=%v, want expanded at 1", s.State, s.Progress)
	}
	if s.Dims.Body != 300 || s.Dims.Height != 96 || s.Dims.Pill != 120 {
		t.Errorf("dims = %+v", s.Dims)
	}
	if ft.settled == 0 {
		t.Error("OnSettle never ran")
	}
	if ft.path.attrs["d"] == "" || ft.path.attrs["d"] != s.Path() {
		t.Errorf("path d = %q, snapshot path %q", ft.path.attrs["d"], s.Path())
	}
	if _, ok := ft.content.styles[measure.PropClipPath]; ok {
		t.Error("clip-path left on settled content")
	}
}

func TestCompactToastStaysPill(t *testing.T) {
	f, c, ft := newTestController(t, Content{Phase: PhaseInfo, Title: "Copied"}, nil)
	f.Advance(10 * time.Second)

	s := c.Snapshot()
	if s.State != StateCompact || s.ShowBody || s.Progress != 0 {
		t.Fatalf("snapshot = %+v", s)
	}
	if len(ft.dismissed) != 0 {
		t.Errorf("compact toast dismissed itself: %v", ft.dismissed)
	}
	if got := ft.content.styles[measure.PropMaxHeight]; got != "34px" {
		t.Errorf("content max-height = %q, want 34px", got)
	}
}

func TestAutoDismissAfterDisplayDuration(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), nil)

	// reveal 330 + countdown 2770 fires the collapse at 3100ms.
	f.Advance(3050 * time.Millisecond)
	if c.Snapshot().Dismissing {
		t.Fatal("dismissing before the countdown elapsed")
	}
	f.Advance(200 * time.Millisecond)
	s := c.Snapshot()
	if !s.Dismissing || s.State != StateCollapsing {
		t.Fatalf("state=%v dismissing=%v, want collapsing", s.State, s.Dismissing)
	}

	f.Advance(1200 * time.Millisecond)
	if c.Snapshot().ShowBody || c.Progress() != 0 {
		t.Fatalf("collapse not settled: progress=%v", c.Progress())
	}
	if len(ft.dismissed) != 0 {
		t.Fatal("dismissed before the grace period")
	}

	f.Advance(time.Second)
	if len(ft.dismissed) != 1 || ft.dismissed[0] != ReasonAuto {
		t.Fatalf("dismissed = %v, want [auto]", ft.dismissed)
	}
	if c.State() != StateDismissed {
		t.Errorf("State = %v", c.State())
	}
}

func TestHoverPausesCountdownAndPreservesRemaining(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), nil)

	f.Advance(330 * time.Millisecond)
	f.Advance(time.Second)
	c.SetHovered(true)

	f.Advance(20 * time.Second)
	if s := c.Snapshot(); s.Dismissing || len(ft.dismissed) != 0 {
		t.Fatalf("hovered toast started dismissing: %+v", s)
	}

	c.SetHovered(false)
	f.Advance(2999 * time.Millisecond)
	if len(ft.dismissed) != 0 {
		t.Fatal("dismissed within 3000ms of resuming")
	}
	if !c.Snapshot().Dismissing {
		t.Fatal("countdown did not resume")
	}
	f.Advance(2 * time.Second)
	if len(ft.dismissed) != 1 {
		t.Fatalf("dismissed = %v", ft.dismissed)
	}
}

func TestHoverWhileCollapsingReExpands(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), nil)

	f.Advance(3100*time.Millisecond + 300*time.Millisecond)
	before := c.Progress()
	if before <= 0 || before >= 1 {
		t.Fatalf("progress = %v, want mid-collapse", before)
	}

	c.SetHovered(true)
	if c.Snapshot().Dismissing {
		t.Fatal("still dismissing after hover")
	}
	f.AdvanceFrames(1)
	f.AdvanceFrames(1)
	if c.Progress() < before {
		t.Errorf("re-expand went backwards: %v -> %v", before, c.Progress())
	}

	f.Advance(3 * time.Second)
	s := c.Snapshot()
	if s.State != StateExpanded || s.Progress != 1 {
		t.Fatalf("state=%v progress=%v after re-expand", s.State, s.Progress)
	}

	// Re-expanded toasts keep going after the pointer leaves.
	c.SetHovered(false)
	f.Advance(10 * time.Second)
	if len(ft.dismissed) != 1 || ft.dismissed[0] != ReasonAuto {
		t.Errorf("dismissed = %v", ft.dismissed)
	}
}

func TestReducedMotionExpandsWithinOneFrame(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), func(s *Settings) { s.ReducedMotion = true })

	f.AdvanceFrames(1)
	s := c.Snapshot()
	if !s.ShowBody || s.Progress != 1 || s.State != StateExpanded {
		t.Fatalf("state=%v progress=%v showBody=%v", s.State, s.Progress, s.ShowBody)
	}

	c.SetContent(Content{Phase: PhaseError, Title: "Failed", Description: "Try again."})
	f.Advance(10 * time.Second)

	for i, snap := range ft.snaps {
		if snap.WrapperTransform != "none" {
			t.Fatalf("snapshot %d has wrapper transform %q", i, snap.WrapperTransform)
		}
	}
	if len(ft.dismissed) != 1 {
		t.Errorf("dismissed = %v", ft.dismissed)
	}
}

func TestErrorPhaseShakes(t *testing.T) {
	f, c, ft := newTestController(t, Content{Phase: PhaseLoading, Title: "Uploading"}, nil)
	f.Advance(time.Second)

	ft.snaps = nil
	c.SetContent(Content{Phase: PhaseError, Title: "Upload failed"})
	f.Advance(500 * time.Millisecond)

	shook := false
	for _, s := range ft.snaps {
		if strings.Contains(s.WrapperTransform, "translateX(") {
			shook = true
		}
	}
	if !shook {
		t.Error("no shake transform after entering the error phase")
	}
	if got := c.Snapshot().WrapperTransform; got != "none" {
		t.Errorf("transform after shake = %q", got)
	}
}

func TestMountSquishFiresForCompactToast(t *testing.T) {
	f, _, ft := newTestController(t, Content{Phase: PhaseDefault, Title: "Hello"}, nil)
	f.Advance(time.Second)

	squished := false
	for _, s := range ft.snaps {
		if strings.Contains(s.WrapperTransform, "scaleX(") {
			squished = true
		}
	}
	if !squished {
		t.Error("mount squish never rendered")
	}
}

func TestActionSuccessMorphsBackToPill(t *testing.T) {
	clicks := 0
	content := Content{
		Phase: PhaseInfo,
		Title: "Update ready",
		Action: &Action{
			Label:        "Install",
			OnClick:      func() { clicks++ },
			SuccessLabel: "Installed",
		},
	}
	f, c, ft := newTestController(t, content, nil)
	f.Advance(2 * time.Second)
	if c.State() != StateExpanded {
		t.Fatalf("State = %v", c.State())
	}

	c.ClickAction()
	if clicks != 1 {
		t.Fatalf("clicks = %d", clicks)
	}
	s := c.Snapshot()
	if s.Title != "Installed" || s.Phase != PhaseSuccess || !s.ActionSucceeded || s.Action != nil {
		t.Fatalf("snapshot after click = %+v", s)
	}

	f.Advance(time.Second)
	if c.Progress() != 0 || c.Snapshot().ShowBody {
		t.Fatalf("not back to a pill: progress=%v", c.Progress())
	}
	if len(ft.dismissed) != 0 {
		t.Fatal("dismissed before the success pill settled")
	}
	f.Advance(1300 * time.Millisecond)
	if len(ft.dismissed) != 1 || ft.dismissed[0] != ReasonAction {
		t.Fatalf("dismissed = %v", ft.dismissed)
	}
}

func TestActionPanicIsRecovered(t *testing.T) {
	content := expandable()
	content.Action = &Action{Label: "Retry", OnClick: func() { panic("boom") }}
	f, c, _ := newTestController(t, content, nil)
	f.Advance(2 * time.Second)

	c.ClickAction()
	if c.State() != StateExpanded {
		t.Errorf("State = %v after a panicking handler", c.State())
	}
}

func TestHostDismiss(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		_, c, ft := newTestController(t, Content{Phase: PhaseDefault, Title: "Hi"}, nil)
		c.Dismiss()
		if len(ft.dismissed) != 1 || ft.dismissed[0] != ReasonHost {
			t.Fatalf("dismissed = %v", ft.dismissed)
		}
		c.Dismiss()
		if len(ft.dismissed) != 1 {
			t.Error("OnDismiss ran twice")
		}
	})

	t.Run("expanded", func(t *testing.T) {
		f, c, ft := newTestController(t, expandable(), nil)
		f.Advance(2 * time.Second)
		c.Dismiss()
		if len(ft.dismissed) != 0 {
			t.Fatal("expanded toast removed without collapsing")
		}
		f.Advance(3 * time.Second)
		if len(ft.dismissed) != 1 || ft.dismissed[0] != ReasonHost {
			t.Fatalf("dismissed = %v", ft.dismissed)
		}
	})
}

func TestProgressHasSingleWriter(t *testing.T) {
	f, c, _ := newTestController(t, expandable(), func(s *Settings) { s.Spring = false })
	f.Advance(330*time.Millisecond + 200*time.Millisecond)
	mid := c.Progress()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("progress = %v, want mid-expand", mid)
	}

	c.Dismiss()
	prev := c.Progress()
	for i := 0; i < 80; i++ {
		f.AdvanceFrames(1)
		p := c.Progress()
		if p > prev {
			t.Fatalf("frame %d: progress rose %v -> %v during collapse", i, prev, p)
		}
		prev = p
	}
	if prev != 0 {
		t.Errorf("progress = %v after collapse", prev)
	}
}

func TestUnmountCancelsEverything(t *testing.T) {
	f, c, _ := newTestController(t, expandable(), nil)
	f.Advance(500 * time.Millisecond)
	c.SetHovered(true)
	c.SetContent(Content{Phase: PhaseError, Title: "Oops", Description: "Details"})

	c.Unmount()
	if n := f.Pending(); n != 0 {
		t.Fatalf("Pending = %d after Unmount", n)
	}
}

func TestPillResizesWhenCompactTitleChanges(t *testing.T) {
	f, c, ft := newTestController(t, Content{Phase: PhaseDefault, Title: "Hello"}, nil)
	f.Advance(time.Second)
	if got := c.Snapshot().Dims.Pill; got != 120 {
		t.Fatalf("pill = %v, want 120", got)
	}

	ft.header.w = 160
	c.SetContent(Content{Phase: PhaseDefault, Title: "Hello from the other side"})
	if kind, ok := c.dims.Active(); !ok || kind != motion.KindPillResize {
		t.Fatalf("active = %v %v, want pill-resize", kind, ok)
	}
	f.AdvanceFrames(3)
	if p := c.Snapshot().Dims.Pill; p <= 120 || p >= 180 {
		t.Errorf("pill mid-resize = %v, want between 120 and 180", p)
	}

	f.Advance(2 * time.Second)
	s := c.Snapshot()
	if s.Dims.Pill != 180 || s.State != StateCompact {
		t.Fatalf("after resize: state=%v dims=%+v", s.State, s.Dims)
	}
	if _, ok := c.dims.Active(); ok {
		t.Error("pill-resize still running")
	}
}

func TestSquishIsThrottled(t *testing.T) {
	f, c, ft := newTestController(t, Content{Phase: PhaseDefault, Title: "Hello"}, nil)
	f.Advance(50 * time.Millisecond)
	first := c.lastSquish
	if first.IsZero() {
		t.Fatal("mount squish did not fire")
	}

	// A resize 100ms after the mount squish must not squish again.
	f.Advance(50 * time.Millisecond)
	ft.header.w = 140
	c.SetContent(Content{Phase: PhaseDefault, Title: "Hello there"})
	if !c.lastSquish.Equal(first) {
		t.Fatalf("squished again after %v", c.lastSquish.Sub(first))
	}

	f.Advance(time.Second)
	ft.header.w = 170
	c.SetContent(Content{Phase: PhaseDefault, Title: "Hello there, again"})
	if c.lastSquish.Sub(first) < motion.SquishThrottle {
		t.Errorf("resize after the throttle window did not squish")
	}
}

func TestNoSquishWithoutSpring(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), func(s *Settings) { s.Spring = false })
	f.Advance(10 * time.Second)

	for i, s := range ft.snaps {
		if strings.Contains(s.WrapperTransform, "scale") {
			t.Fatalf("snapshot %d has squish transform %q", i, s.WrapperTransform)
		}
	}
	if !c.lastSquish.IsZero() {
		t.Error("squish recorded with spring disabled")
	}
	if len(ft.dismissed) != 1 {
		t.Errorf("dismissed = %v", ft.dismissed)
	}
}

func TestShortDisplayDurationNeverAutoDismisses(t *testing.T) {
	// 1s is less than reveal plus collapse, so there is no countdown.
	f, c, ft := newTestController(t, expandable(), func(s *Settings) { s.DisplayDuration = time.Second })
	f.Advance(30 * time.Second)

	s := c.Snapshot()
	if s.State != StateExpanded || s.Dismissing {
		t.Fatalf("state=%v dismissing=%v, want expanded", s.State, s.Dismissing)
	}
	if len(ft.dismissed) != 0 {
		t.Errorf("dismissed = %v", ft.dismissed)
	}
}

func TestClickActionIgnoredWhileDismissing(t *testing.T) {
	clicks := 0
	content := expandable()
	content.Action = &Action{Label: "Undo", OnClick: func() { clicks++ }, SuccessLabel: "Undone"}
	f, c, ft := newTestController(t, content, nil)
	f.Advance(2 * time.Second)

	c.Dismiss()
	c.ClickAction()
	if clicks != 0 {
		t.Fatalf("clicks = %d on a dismissing toast", clicks)
	}
	if s := c.Snapshot(); s.ActionSucceeded || s.Title != "Saved" {
		t.Fatalf("snapshot = %+v", s)
	}
	f.Advance(3 * time.Second)
	if len(ft.dismissed) != 1 || ft.dismissed[0] != ReasonHost {
		t.Fatalf("dismissed = %v", ft.dismissed)
	}
}

func TestRetuneAppliesToLiveToast(t *testing.T) {
	f, c, ft := newTestController(t, expandable(), nil)
	set := c.Settings()
	set.Spring = false
	set.Bounce = 2
	set.DisplayDuration = time.Second
	c.Retune(set)

	got := c.Settings()
	if got.Spring || got.Bounce != 0.8 || got.DisplayDuration != time.Second {
		t.Fatalf("settings = %+v", got)
	}
	f.Advance(30 * time.Second)
	if c.State() != StateExpanded || len(ft.dismissed) != 0 {
		t.Errorf("state=%v dismissed=%v, want expanded", c.State(), ft.dismissed)
	}
}
