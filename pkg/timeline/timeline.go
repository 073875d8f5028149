// Package timeline runs a scripted toast on a fake clock and samples what
// it renders every frame. The CLI, the preview server and the exporter
// are built on it.
package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/pref"
	"github.com/vango-dev/goey/pkg/schedule"
	"github.com/vango-dev/goey/pkg/telemetry"
	"github.com/vango-dev/goey/pkg/toast"
)

// DefaultLimit bounds a script that never dismisses.
const DefaultLimit = 10 * time.Second

// Action is something a script does to its toast.
type Action string

const (
	Hover   Action = "hover"
	Unhover Action = "unhover"
	Click   Action = "click"
	Update  Action = "update"
	Dismiss Action = "dismiss"
)

// Step is one scripted input. Update steps replace the toast's phase,
// title and description.
type Step struct {
	At          Duration `json:"at"`
	Action      Action   `json:"action"`
	Phase       string   `json:"phase,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Script is a toast and the inputs applied to it over time.
type Script struct {
	Phase        string   `json:"phase"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	ActionLabel  string   `json:"actionLabel,omitempty"`
	SuccessLabel string   `json:"successLabel,omitempty"`
	Steps        []Step   `json:"steps,omitempty"`
	Limit        Duration `json:"limit,omitempty"`
	Reduced      bool     `json:"reducedMotion,omitempty"`
}

// Frame is what the toast rendered at one instant.
type Frame struct {
	Index            int     `json:"index"`
	At               int64   `json:"atMs"`
	State            string  `json:"state"`
	Phase            string  `json:"phase"`
	Title            string  `json:"title"`
	ShowBody         bool    `json:"showBody"`
	Progress         float64 `json:"progress"`
	Pill             float64 `json:"pill"`
	Body             float64 `json:"body"`
	Height           float64 `json:"height"`
	Path             string  `json:"path"`
	WrapperTransform string  `json:"wrapperTransform"`
	HeaderTransform  string  `json:"headerTransform"`
	// HTML is the rendered toast. It is only set when Config.HTML is.
	HTML string `json:"html,omitempty"`
}

// Config is how a script is run.
type Config struct {
	Toaster toast.Config
	// HTML renders every frame's markup.
	HTML    bool
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

// DefaultScript is an expandable success toast that is hovered briefly
// and then left to dismiss itself.
func DefaultScript() Script {
	return Script{
		Phase:       string(morph.PhaseSuccess),
		Title:       "Changes saved",
		Description: "Your profile is live for everyone.",
		Steps: []Step{
			{At: Duration(1500 * time.Millisecond), Action: Hover},
			{At: Duration(2500 * time.Millisecond), Action: Unhover},
		},
	}
}

// Validate checks phases and actions.
func (s Script) Validate() error {
	if _, err := morph.ParsePhase(s.Phase); err != nil {
		return err
	}
	for i, st := range s.Steps {
		switch st.Action {
		case Hover, Unhover, Click, Dismiss:
		case Update:
			if _, err := morph.ParsePhase(st.Phase); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		default:
			return fmt.Errorf("timeline: %w", errors.New("G010").
				WithDetailf("step %d: unknown action %q", i, st.Action).
				WithSuggestion("Use hover, unhover, click, update or dismiss"))
		}
		if st.At < 0 {
			return fmt.Errorf("timeline: %w", errors.New("G010").WithDetailf("step %d: negative time", i))
		}
	}
	return nil
}

// Run runs s to completion and returns every frame.
func Run(s Script, cfg Config) ([]Frame, error) {
	var frames []Frame
	err := Stream(context.Background(), s, cfg, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	return frames, err
}

// Stream runs s and calls emit with each frame as it is sampled. It stops
// when the toast is removed, the limit is reached, ctx is done or emit
// fails.
func Stream(ctx context.Context, s Script, cfg Config, emit func(Frame) error) error {
	if err := s.Validate(); err != nil {
		return err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := time.Duration(s.Limit)
	if limit <= 0 {
		limit = DefaultLimit
	}
	steps := append([]Step(nil), s.Steps...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })

	clock := schedule.NewFake()
	host := toast.NewListHost(clock, toast.WithHostLogger(logger))
	tcfg := cfg.Toaster
	if tcfg.Position == "" {
		tcfg = toast.DefaultConfig()
	}
	t := toast.New(host, clock,
		toast.WithConfig(tcfg),
		toast.WithLogger(logger),
		toast.WithMetrics(cfg.Metrics),
		toast.WithReducedMotion(pref.New("reduced-motion", s.Reduced)),
	)

	phase, _ := morph.ParsePhase(s.Phase)
	var opts []toast.Option
	if s.Description != "" {
		opts = append(opts, toast.WithDescription(s.Description))
	}
	if s.ActionLabel != "" {
		opts = append(opts, toast.WithAction(toast.Action{Label: s.ActionLabel, SuccessLabel: s.SuccessLabel}))
	}
	h := t.Notify(phase, s.Title, opts...)
	clock.Flush()

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		elapsed := clock.Elapsed()
		for len(steps) > 0 && time.Duration(steps[0].At) <= elapsed {
			apply(t, host, h, steps[0])
			steps = steps[1:]
		}
		clock.Flush()

		in, ok := t.Get(h.ID())
		if !ok {
			logger.Debug("timeline finished", "frames", i, "elapsed", elapsed)
			return emit(Frame{Index: i, At: elapsed.Milliseconds(), State: morph.StateDismissed.String()})
		}
		f, err := sample(in, i, elapsed, cfg.HTML)
		if err != nil {
			return err
		}
		if err := emit(f); err != nil {
			return err
		}
		if elapsed >= limit {
			logger.Debug("timeline limit reached", "frames", i+1, "limit", limit)
			return nil
		}
		clock.Advance(schedule.FrameInterval)
	}
}

func apply(t *toast.Toaster, host *toast.ListHost, h *toast.Handle, st Step) {
	switch st.Action {
	case Hover:
		host.Hover(h.ID(), true)
	case Unhover:
		host.Hover(h.ID(), false)
	case Click:
		host.Click(h.ID())
	case Update:
		phase, _ := morph.ParsePhase(st.Phase)
		var opts []toast.Option
		if st.Description != "" {
			opts = append(opts, toast.WithDescription(st.Description))
		}
		h.Update(phase, st.Title, opts...)
	case Dismiss:
		h.Dismiss()
	}
}

func sample(in *toast.Instance, i int, at time.Duration, html bool) (Frame, error) {
	s := in.Snapshot()
	f := Frame{
		Index:            i,
		At:               at.Milliseconds(),
		State:            s.State.String(),
		Phase:            string(s.Phase),
		Title:            s.Title,
		ShowBody:         s.ShowBody,
		Progress:         s.Progress,
		Pill:             s.Dims.Pill,
		Body:             s.Dims.Body,
		Height:           s.Dims.Height,
		Path:             s.Path(),
		WrapperTransform: s.WrapperTransform,
		HeaderTransform:  s.HeaderTransform,
	}
	if html {
		markup, err := in.HTML()
		if err != nil {
			return Frame{}, err
		}
		f.HTML = markup
	}
	return f, nil
}

// Sample keeps one frame per interval, starting with the first. Intervals
// at or below the animation frame keep every frame.
func Sample(frames []Frame, interval time.Duration) []Frame {
	if interval <= schedule.FrameInterval || len(frames) == 0 {
		return frames
	}
	out := []Frame{frames[0]}
	next := frames[0].At + interval.Milliseconds()
	for _, f := range frames[1:] {
		if f.At >= next {
			out = append(out, f)
			next += interval.Milliseconds()
		}
	}
	return out
}
