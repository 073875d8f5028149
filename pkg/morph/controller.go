package morph

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/measure"
	"github.com/vango-dev/goey/pkg/motion"
	"github.com/vango-dev/goey/pkg/schedule"
	"github.com/vango-dev/goey/pkg/telemetry"
)

// Settings are one toast's resolved animation settings. Per-toast
// overrides are applied by the caller before the controller is built.
type Settings struct {
	Anchor geometry.Anchor
	// Spring selects spring physics; false substitutes a cubic ease.
	Spring bool
	// Bounce is the spring intensity, clamped to [0.05, 0.8].
	Bounce float64
	// DisplayDuration is how long an expanded toast stays open.
	// Zero means motion.DefaultDisplayDuration.
	DisplayDuration time.Duration
	ReducedMotion   bool

	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

// DefaultSettings returns spring animation with the default bounce.
func DefaultSettings() Settings {
	return Settings{
		Spring:          true,
		Bounce:          motion.DefaultBounce,
		DisplayDuration: motion.DefaultDisplayDuration,
	}
}

// Controller drives one toast's morph and timing.
type Controller struct {
	sched   schedule.Scheduler
	set     Settings
	logger  *slog.Logger
	metrics *telemetry.Metrics

	refs     measure.Refs
	measurer measure.Measurer
	watcher  *measure.Watcher
	mounted  bool

	content   Content
	prevPhase Phase
	success   string // action success label; never cleared once set

	showBody    bool
	dismissing  bool
	hovered     bool
	collapsing  bool
	preDismiss  bool
	reExpanding bool
	reduced     bool
	dismissed   bool
	reason      DismissReason

	measured     geometry.Dims
	anim         geometry.Dims
	expandedDims geometry.Dims
	t            float64
	collapseEnd  time.Time
	lastSquish   time.Time

	// dims is the only writer of t and anim. It runs the expand,
	// collapse, re-expand and pill-resize animations.
	dims   *motion.Driver
	squish *motion.Driver
	shake  *motion.Driver
	header *motion.Driver

	countdown *motion.Countdown

	revealTimer  schedule.Cancel
	squishTimer  schedule.Cancel
	mountTimer   schedule.Cancel
	graceTimer   schedule.Cancel
	actionTimer  schedule.Cancel
	expandFrame  schedule.Cancel
	wasExpanded  bool
	mountSquish  bool
	headerActive bool

	squishScale motion.Scale
	shakeX      float64
	headerV     float64

	onChange  func(Snapshot)
	onDismiss func(DismissReason)
	onSettle  func()
}

// New creates a controller for content. It does nothing until Mount.
func New(s schedule.Scheduler, content Content, set Settings) *Controller {
	if set.DisplayDuration == 0 {
		set.DisplayDuration = motion.DefaultDisplayDuration
	}
	set.Bounce = motion.ClampBounce(set.Bounce)
	logger := set.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		sched:       s,
		set:         set,
		logger:      logger,
		metrics:     set.Metrics,
		content:     content,
		prevPhase:   content.Phase,
		reduced:     set.ReducedMotion,
		squishScale: motion.Identity,
	}
	var opts []motion.DriverOption
	if set.Metrics != nil {
		opts = append(opts, motion.WithMonitor(set.Metrics))
	}
	c.dims = motion.NewDriver(s, opts...)
	c.squish = motion.NewDriver(s, opts...)
	c.shake = motion.NewDriver(s, opts...)
	c.header = motion.NewDriver(s, opts...)
	c.countdown = motion.NewCountdown(s, c.preDismissFired)
	return c
}

// OnChange registers a callback run after every visible change.
func (c *Controller) OnChange(fn func(Snapshot)) { c.onChange = fn }

// OnDismiss registers the callback run exactly once when the controller
// decides the toast should be removed.
func (c *Controller) OnDismiss(fn func(DismissReason)) { c.onDismiss = fn }

// OnSettle registers a callback run whenever an expand settles, so the
// host layout can pick up the final height.
func (c *Controller) OnSettle(fn func()) { c.onSettle = fn }

// Mount attaches the toast's elements and starts measuring. source may be
// nil.
func (c *Controller) Mount(refs measure.Refs, source measure.ResizeSource) {
	if c.mounted || c.dismissed {
		return
	}
	c.mounted = true
	c.refs = refs
	c.measurer = measure.Measurer{Refs: refs, Logger: c.logger}
	c.watcher = measure.NewWatcher(c.measurer, c.sched, source, c.commitDims)
	c.wasExpanded = false

	c.watcher.Start()
	c.expansionChanged()
	c.syncHeader()
	c.changed()
}

// Unmount cancels every timer, frame and animation.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.watcher.Stop()
	c.dims.Stop()
	c.squish.Stop()
	c.shake.Stop()
	c.header.Stop()
	c.countdown.Stop()
	schedule.Stop(&c.revealTimer, &c.squishTimer, &c.mountTimer, &c.graceTimer, &c.actionTimer, &c.expandFrame)
}

// SetContent replaces the displayed content, keeping all animation state.
func (c *Controller) SetContent(content Content) {
	if c.dismissed {
		return
	}
	c.content = content

	if content.Phase == PhaseError && c.prevPhase != PhaseError && !c.dismissing {
		c.startShake()
	}
	c.prevPhase = content.Phase

	c.expansionChanged()
	c.checkReExpand()
	c.changed()
	c.remeasure()
}

// SetHovered reports pointer hover. Hover pauses the pre-dismiss countdown
// and re-expands a collapsing toast.
func (c *Controller) SetHovered(h bool) {
	if c.hovered == h || c.dismissed {
		return
	}
	c.hovered = h
	c.syncCountdown()
	c.checkReExpand()
	c.syncDismissTimers()
	c.changed()
}

// Retune replaces the spring, bounce and display-duration settings of a
// live toast. Running animations keep the transition they started with,
// and a running countdown keeps its deadline.
func (c *Controller) Retune(set Settings) {
	if set.DisplayDuration == 0 {
		set.DisplayDuration = motion.DefaultDisplayDuration
	}
	c.set.Spring = set.Spring
	c.set.Bounce = motion.ClampBounce(set.Bounce)
	c.set.DisplayDuration = set.DisplayDuration
}

// Settings returns the settings in effect.
func (c *Controller) Settings() Settings { return c.set }

// SetReducedMotion applies the reduced-motion preference.
func (c *Controller) SetReducedMotion(r bool) {
	if c.reduced == r {
		return
	}
	c.reduced = r
	if r {
		c.squish.Stop()
		c.shake.Stop()
		c.squishScale, c.shakeX = motion.Identity, 0
		c.paintTransforms()
	}
	c.syncCountdown()
	c.changed()
}

// ClickAction runs the current action. An action with a success label
// swaps in the success title and starts the morph back to a pill before
// its handler runs; handler panics are recovered. Clicks on a dismissing
// toast are ignored.
func (c *Controller) ClickAction() {
	a := c.effective().Action
	if a == nil || c.dismissed || c.dismissing {
		return
	}
	if a.SuccessLabel != "" {
		c.expandedDims = c.anim
		c.collapsing = true
		c.success = a.SuccessLabel
		c.expansionChanged()
		c.syncCountdown()
		c.syncHeader()
		c.syncDismissTimers()
		c.changed()
		c.remeasure()
	}
	c.runAction(a)
}

// Dismiss collapses an expanded toast and then asks to be removed. A
// compact toast asks immediately.
func (c *Controller) Dismiss() {
	if c.dismissed {
		return
	}
	if c.dismissing || c.success != "" && c.showBody {
		return // already leaving
	}
	c.reason = ReasonHost
	if !c.showBody {
		c.finish(ReasonHost)
		return
	}
	c.countdown.Stop()
	c.expandedDims = c.anim
	c.collapsing = true
	c.setDismissing(true)
	c.changed()
}

// Snapshot returns the current rendered state.
func (c *Controller) Snapshot() Snapshot {
	e := c.effective()
	s := Snapshot{
		State:            c.state(),
		Phase:            e.Phase,
		Title:            e.Title,
		Description:      e.Description,
		Body:             e.Body,
		Action:           e.Action,
		ActionSucceeded:  c.success != "",
		ShowBody:         c.showBody,
		Dismissing:       c.dismissing,
		Hovered:          c.hovered,
		Reduced:          c.reduced,
		Anchor:           c.set.Anchor,
		Progress:         c.t,
		Dims:             c.anim,
		Measured:         c.measured,
		WrapperTransform: c.wrapperTransform(),
		HeaderTransform:  motion.HeaderTransform(c.headerV),
	}
	if c.anim.Valid() {
		s.FullWidth, s.Outline, s.Constraints = c.geometry()
	}
	return s
}

// State returns the coarse state.
func (c *Controller) State() State { return c.state() }

// Progress returns the raw morph progress, which may overshoot [0, 1]
// under spring physics.
func (c *Controller) Progress() float64 { return c.t }

func (c *Controller) state() State {
	if c.dismissed {
		return StateDismissed
	}
	if kind, ok := c.dims.Active(); ok {
		switch kind {
		case motion.KindCollapse:
			return StateCollapsing
		case motion.KindExpand, motion.KindReExpand:
			return StateExpanding
		}
	}
	if c.collapsing || c.dismissing && c.showBody {
		return StateCollapsing
	}
	if c.isExpanded() {
		if c.showBody && c.t >= 1 {
			return StateExpanded
		}
		return StateExpanding
	}
	return StateCompact
}

func (c *Controller) effective() Content {
	if c.success == "" {
		return c.content
	}
	return Content{Phase: PhaseSuccess, Title: c.success}
}

func (c *Controller) isExpanded() bool {
	return c.effective().Expandable() && !c.dismissing
}

// expansionChanged runs when isExpanded may have flipped: it schedules the
// header reveal, or collapses back to a pill.
func (c *Controller) expansionChanged() {
	if !c.mounted {
		return
	}
	expanded := c.isExpanded()
	if expanded == c.wasExpanded && (expanded || c.t <= 0) {
		return
	}
	c.wasExpanded = expanded
	schedule.Stop(&c.revealTimer)

	if expanded {
		delay := motion.RevealDelay
		if c.reduced {
			delay = 0
		}
		c.revealTimer = c.sched.After(delay, func() {
			c.revealTimer = nil
			c.setShowBody(true)
		})
		return
	}

	c.dims.Stop()
	schedule.Stop(&c.expandFrame)

	if c.t <= 0 {
		c.setShowBody(false)
		c.t = 0
		c.flush()
		return
	}
	c.collapse()
}

func (c *Controller) collapse() {
	pw, ok := c.measurer.PillWidth()
	if !ok {
		pw = c.anim.Pill
	}
	target := geometry.Dims{Pill: pw, Body: pw, Height: geometry.PillHeight}

	if c.reduced {
		c.t = 0
		c.collapsing, c.preDismiss = false, false
		c.anim = target
		c.flush()
		c.setShowBody(false)
		return
	}

	saved := c.anim
	if c.expandedDims.Body > 0 {
		saved = c.expandedDims
	}

	var tr motion.Transition
	if c.preDismiss || !c.set.Spring {
		tr = motion.Smooth(motion.CollapseDuration)
	} else {
		tr = motion.SpringTransition(motion.SpringFor(motion.CollapseDuration, motion.MorphSpringDuration, c.set.Bounce*motion.PillResizeBounceScale))
	}

	c.triggerSquish(motion.SquishCollapse)
	c.dims.Animate(motion.KindCollapse, c.t, 0, tr,
		func(v float64) {
			c.t = v
			c.anim = geometry.Lerp(target, saved, v)
			c.flush()
		},
		func() {
			c.t = 0
			c.collapsing, c.preDismiss = false, false
			c.collapseEnd = c.sched.Now()
			c.anim = target
			c.flush()
			c.logger.Debug("toast collapsed", "anchor", c.set.Anchor)
			c.setShowBody(false)
		})
}

func (c *Controller) setShowBody(v bool) {
	if c.showBody == v {
		return
	}
	prev := c.showBody
	c.showBody = v

	schedule.Stop(&c.squishTimer)
	if !prev && v && !c.hovered {
		c.squishTimer = c.sched.After(motion.SquishExpandDelay, func() {
			c.squishTimer = nil
			c.triggerSquish(motion.SquishExpand)
		})
	}

	c.syncCountdown()
	c.syncDismissTimers()
	c.expand()
	c.syncHeader()
	c.changed()
	c.remeasure()
}

// remeasure runs after the host has seen the change, so the pass reads
// the new layout.
func (c *Controller) remeasure() {
	if c.mounted {
		c.watcher.Remeasure()
	}
}

// expand runs the pill-to-blob morph when the body is shown.
func (c *Controller) expand() {
	if c.reExpanding {
		return
	}
	schedule.Stop(&c.expandFrame)
	if !c.showBody {
		c.t = 0
		c.dims.Stop()
		c.flush()
		return
	}

	if c.reduced {
		c.dims.Stop()
		c.t = 1
		c.anim = c.measured
		c.flush()
		c.settle()
		return
	}

	c.expandFrame = c.sched.Frame(func() {
		c.expandFrame = nil
		c.dims.Stop()
		c.animateToExpanded(motion.KindExpand, 0)
	})
}

func (c *Controller) expandTransition() motion.Transition {
	if c.set.Spring {
		return motion.SpringTransition(motion.SpringFor(motion.MorphSpringDuration, motion.MorphSpringDuration, c.set.Bounce))
	}
	return motion.Smooth(motion.ExpandDuration)
}

// animateToExpanded drives t from `from` to 1, interpolating the size from
// wherever it is now toward the latest measurement.
func (c *Controller) animateToExpanded(kind motion.Kind, from float64) {
	start := c.anim
	c.dims.Animate(kind, from, 1, c.expandTransition(),
		func(v float64) {
			c.t = v
			c.anim = geometry.Lerp(start, c.measured, v)
			c.flush()
		},
		func() {
			c.t = 1
			c.anim = c.measured
			c.reExpanding = false
			c.flush()
			c.logger.Debug("toast expanded", "kind", kind)
			c.settle()
		})
}

func (c *Controller) settle() {
	if c.onSettle != nil {
		c.onSettle()
	}
}

// checkReExpand interrupts a collapse when the toast is hovered while
// dismissing.
func (c *Controller) checkReExpand() {
	if !c.hovered || !c.effective().Expandable() || !c.dismissing || !c.mounted {
		return
	}
	c.dims.Stop()
	c.collapsing, c.preDismiss = false, false
	c.countdown.Stop()
	c.reExpanding = true
	c.setDismissing(false)
	c.setShowBody(true)

	from := c.t
	schedule.Stop(&c.expandFrame)
	c.expandFrame = c.sched.Frame(func() {
		c.expandFrame = nil
		c.animateToExpanded(motion.KindReExpand, from)
	})
}

func (c *Controller) setDismissing(v bool) {
	if c.dismissing == v {
		return
	}
	c.dismissing = v
	c.expansionChanged()
	c.syncCountdown()
	c.syncDismissTimers()
	c.syncHeader()
}

// syncCountdown arms, pauses or stops the pre-dismiss countdown.
func (c *Controller) syncCountdown() {
	delay := motion.PreDismissDelay(c.set.DisplayDuration, c.reduced)
	active := c.mounted && c.showBody && c.success == "" && !c.dismissing && delay > 0

	switch {
	case !active:
		c.countdown.Stop()
	case c.hovered:
		c.countdown.Pause()
	case c.countdown.Running():
	case c.countdown.Paused():
		c.countdown.Resume()
	default:
		c.countdown.Start(delay)
	}
}

func (c *Controller) preDismissFired() {
	c.expandedDims = c.anim
	c.collapsing = true
	c.preDismiss = true
	c.reason = ReasonAuto
	c.setDismissing(true)
	c.changed()
}

// syncDismissTimers keeps the grace and action dismissal timers in step
// with the current flags.
func (c *Controller) syncDismissTimers() {
	if c.mounted && c.dismissing && !c.showBody && !c.hovered {
		if c.graceTimer == nil {
			c.graceTimer = c.sched.After(motion.DismissGrace, func() {
				c.graceTimer = nil
				if !c.hovered {
					reason := c.reason
					if reason == "" {
						reason = ReasonAuto
					}
					c.finish(reason)
				}
			})
		}
	} else {
		schedule.Stop(&c.graceTimer)
	}

	if c.mounted && c.success != "" && !c.showBody {
		if c.actionTimer == nil {
			c.actionTimer = c.sched.After(motion.ActionDismissDelay, func() {
				c.actionTimer = nil
				c.finish(ReasonAction)
			})
		}
	} else {
		schedule.Stop(&c.actionTimer)
	}
}

func (c *Controller) finish(reason DismissReason) {
	if c.dismissed {
		return
	}
	c.dismissed = true
	c.logger.Debug("toast dismissing", "reason", reason)
	c.changed()
	if c.onDismiss != nil {
		c.onDismiss(reason)
	}
}

// commitDims receives every changed measurement.
func (c *Controller) commitDims(d geometry.Dims) {
	c.measured = d
	if !d.Valid() {
		return
	}

	if !c.mountSquish && !c.isExpanded() {
		c.mountSquish = true
		c.mountTimer = c.sched.After(motion.SquishMountDelay, func() {
			c.mountTimer = nil
			c.triggerSquish(motion.SquishMount)
		})
	}

	if c.collapsing {
		return
	}
	prev := c.anim
	switch {
	case prev.Body <= 0, c.t > 0 && c.t < 1, c.showBody, c.reduced:
		c.anim = d
		c.flush()
		return
	case prev == d:
		return
	}

	if c.sched.Now().Sub(c.collapseEnd) > motion.SquishCooldownAfterCollapse && !c.isExpanded() {
		c.triggerSquish(motion.SquishExpand)
	}
	var tr motion.Transition
	if c.set.Spring {
		tr = motion.SpringTransition(motion.SpringFor(motion.PillResizeSpringDuration, motion.MorphSpringDuration, c.set.Bounce*motion.PillResizeBounceScale))
	} else {
		tr = motion.Smooth(motion.PillResizeEasedDuration)
	}
	c.dims.Animate(motion.KindPillResize, 0, 1, tr,
		func(v float64) {
			c.anim = geometry.Lerp(prev, d, v)
			c.flush()
		},
		func() {
			c.anim = d
			c.flush()
		})
}

func (c *Controller) triggerSquish(kind motion.SquishKind) {
	if !c.mounted || c.reduced || !c.set.Spring {
		return
	}
	now := c.sched.Now()
	if !c.lastSquish.IsZero() && now.Sub(c.lastSquish) < motion.SquishThrottle {
		return
	}
	c.lastSquish = now

	ref := motion.ExpandDuration
	if kind == motion.SquishCollapse {
		ref = motion.CollapseDuration
	}
	bounce := c.set.Bounce
	c.squish.Animate(motion.KindSquish, 0, 1, motion.SpringTransition(motion.SpringFor(ref, ref, bounce)),
		func(v float64) {
			c.squishScale = motion.Squish(kind, bounce, v)
			c.paintTransforms()
		},
		func() {
			c.squishScale = motion.Identity
			c.paintTransforms()
		})
}

func (c *Controller) startShake() {
	if !c.mounted || c.reduced {
		return
	}
	c.shake.Animate(motion.KindShake, 0, 1, motion.ShakeTransition(),
		func(v float64) {
			c.shakeX = motion.Shake(v)
			c.paintTransforms()
		},
		func() {
			c.shakeX = 0
			c.paintTransforms()
		})
}

// syncHeader squishes the header down while the body shows and springs it
// back once when the body goes away.
func (c *Controller) syncHeader() {
	if !c.mounted || c.reduced {
		return
	}
	bounce := c.set.Bounce
	tick := func(v float64) {
		c.headerV = v
		c.paintTransforms()
	}

	if c.showBody && !c.dismissing && c.success == "" {
		if !c.set.Spring || c.headerActive {
			return
		}
		c.headerActive = true
		c.header.Animate(motion.KindHeaderSquish, c.headerV, 1,
			motion.SpringTransition(motion.SpringFor(motion.ExpandDuration, motion.ExpandDuration, bounce)), tick, nil)
		return
	}
	if !c.headerActive {
		return
	}
	c.headerActive = false
	tr := motion.Smooth(motion.CollapseDuration / 2)
	if !c.preDismiss && c.set.Spring {
		tr = motion.SpringTransition(motion.SpringFor(motion.CollapseDuration, motion.CollapseDuration, bounce))
	}
	c.header.Animate(motion.KindHeaderSquish, c.headerV, 0, tr, tick, func() {
		c.headerV = 0
		c.paintTransforms()
	})
}

func (c *Controller) runAction(a *Action) {
	if a.OnClick == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := errors.New("G003").Wrap(fmt.Errorf("%v", r))
			c.logger.Warn("action handler failed", "error", err, "label", a.Label)
			c.metrics.ActionFailure()
		}
	}()
	a.OnClick()
}

// geometry computes the outline and constraints for the animated state.
func (c *Controller) geometry() (float64, geometry.Outline, geometry.Constraints) {
	t := math.Max(0, math.Min(1, c.t))
	a := c.anim
	anchor := c.set.Anchor
	full := geometry.StableWidth(c.measured, c.expandedDims, a.Pill)

	var outline geometry.Outline
	if anchor == geometry.Center {
		outline = geometry.Morph(a.Pill, full, a.Height, t, anchor)
	} else {
		outline = geometry.Morph(a.Pill, a.Body, a.Height, t, anchor)
	}
	return full, outline, geometry.Constrain(a, c.measured, full, t, anchor)
}

// flush writes the animated state to the mounted elements.
func (c *Controller) flush() {
	if !c.anim.Valid() {
		return
	}
	_, outline, cons := c.geometry()
	if c.mounted {
		if c.refs.Path != nil {
			c.refs.Path.SetAttribute("d", outline.String())
		}
		if c.refs.Wrapper != nil {
			for k, v := range cons.WrapperStyle() {
				c.refs.Wrapper.SetStyle(k, v)
			}
		}
		if c.refs.Content != nil {
			for k, v := range cons.ContentStyle() {
				c.refs.Content.SetStyle(k, v)
			}
		}
	}
	c.changed()
}

func (c *Controller) paintTransforms() {
	if c.mounted {
		if c.refs.Wrapper != nil {
			c.refs.Wrapper.SetStyle(measure.PropTransform, noneToEmpty(c.wrapperTransform()))
			origin := ""
			if c.squishScale != motion.Identity {
				origin = "center top"
			}
			c.refs.Wrapper.SetStyle("transform-origin", origin)
		}
		if c.refs.Header != nil {
			c.refs.Header.SetStyle(measure.PropTransform, noneToEmpty(motion.HeaderTransform(c.headerV)))
		}
	}
	c.changed()
}

func (c *Controller) wrapperTransform() string {
	var out string
	if c.shakeX != 0 {
		out = "translateX(" + strconv.FormatFloat(math.Round(c.shakeX*1000)/1000, 'f', -1, 64) + "px)"
	}
	if c.squishScale != motion.Identity {
		if out != "" {
			out += " "
		}
		out += c.squishScale.Transform()
	}
	if out == "" {
		return "none"
	}
	return out
}

func noneToEmpty(s string) string {
	if s == "none" {
		return ""
	}
	return s
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c.Snapshot())
	}
}
