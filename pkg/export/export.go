package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/render"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/timeline"
)

// ManifestName is the manifest's file name.
const ManifestName = "manifest.json"

// Manifest describes an export.
type Manifest struct {
	Script timeline.Script `json:"script"`
	// FrameInterval is the time between frames in milliseconds.
	FrameInterval int64       `json:"frameIntervalMs"`
	Width         float64     `json:"width"`
	Height        float64     `json:"height"`
	Frames        []FrameFile `json:"frames"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// FrameFile is one exported frame.
type FrameFile struct {
	Name  string  `json:"name"`
	At    int64   `json:"atMs"`
	State string  `json:"state"`
	T     float64 `json:"progress"`
}

// Exporter writes frames to a Store.
type Exporter struct {
	Store Store
	// Concurrency bounds parallel writes (default GOMAXPROCS).
	Concurrency int

	Fill        string
	Border      string
	BorderWidth float64

	Logger *slog.Logger
	// Now stamps the manifest (default time.Now).
	Now func() time.Time
}

// New creates an exporter writing to s.
func New(s Store) *Exporter {
	return &Exporter{Store: s}
}

// FrameName is the file name of frame i.
func FrameName(i int) string { return fmt.Sprintf("frame-%05d.svg", i) }

// Export renders every frame that has an outline to an SVG document sized
// to the largest frame, writes them concurrently, then writes the
// manifest. Frames after dismissal are skipped.
func (e *Exporter) Export(ctx context.Context, script timeline.Script, frames []timeline.Frame) (Manifest, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := e.Now
	if now == nil {
		now = time.Now
	}
	limit := e.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	drawn := make([]timeline.Frame, 0, len(frames))
	for _, f := range frames {
		if f.Path != "" {
			drawn = append(drawn, f)
		}
	}
	w, h := canvas(drawn)

	m := Manifest{
		Script:    script,
		Width:     w,
		Height:    h,
		Frames:    make([]FrameFile, len(drawn)),
		CreatedAt: now().UTC(),
	}
	if len(frames) > 1 {
		m.FrameInterval = frames[1].At - frames[0].At
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	renderer := render.NewRenderer(render.RendererConfig{})
	for i, f := range drawn {
		name := FrameName(f.Index)
		m.Frames[i] = FrameFile{Name: name, At: f.At, State: f.State, T: f.Progress}
		doc := shell.Document(f.Path, w, h, e.Fill, e.Border, e.BorderWidth)
		g.Go(func() error {
			svg, err := renderer.RenderToString(doc)
			if err != nil {
				return frameError(name, err)
			}
			if err := e.Store.Put(gctx, name, "image/svg+xml", []byte(svg)); err != nil {
				return frameError(name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Manifest{}, err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Manifest{}, frameError(ManifestName, err)
	}
	if err := e.Store.Put(ctx, ManifestName, "application/json", data); err != nil {
		return Manifest{}, frameError(ManifestName, err)
	}
	logger.Info("frames exported", "frames", len(drawn), "width", w, "height", h)
	return m, nil
}

func frameError(name string, err error) error {
	return fmt.Errorf("export: %w", errors.New("G020").WithDetailf("%s", name).Wrap(err))
}

// canvas is the smallest size that holds every frame's outline.
func canvas(frames []timeline.Frame) (w, h float64) {
	w, h = 0, geometry.PillHeight
	for _, f := range frames {
		w = math.Max(w, f.Body)
		h = math.Max(h, f.Height)
	}
	return math.Ceil(w), math.Ceil(h)
}
