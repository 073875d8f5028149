package preview

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/render"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/timeline"
	"github.com/vango-dev/goey/pkg/vdom"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// OutlineSVG renders one outline as a standalone SVG document.
func OutlineSVG(pill, body, height, t float64, anchor geometry.Anchor, fill, border string) *vdom.VNode {
	o := geometry.Morph(pill, body, height, t, anchor)
	_, _, maxX, maxY := o.Bounds()
	return shell.Document(o.String(), maxX, maxY, fill, border, 0)
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pill, err1 := floatParam(q.Get("pill"), 120)
	body, err2 := floatParam(q.Get("body"), 300)
	height, err3 := floatParam(q.Get("height"), 96)
	t, err4 := floatParam(q.Get("t"), 1)
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			s.badRequest(w, err)
			return
		}
	}
	anchor := s.config.Toaster.Position.Anchor()
	if a := q.Get("anchor"); a != "" {
		parsed, err := geometry.ParseAnchor(a)
		if err != nil {
			s.badRequest(w, err)
			return
		}
		anchor = parsed
	}
	fill := q.Get("fill")
	if fill == "" {
		fill = s.config.Toaster.Fill()
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	node := OutlineSVG(pill, body, height, t, anchor, fill, q.Get("stroke"))
	if err := render.NewRenderer(render.RendererConfig{}).RenderToWriter(w, node); err != nil {
		s.logger.Error("outline render failed", "error", err)
	}
}

func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	script, err := s.scriptFromQuery(r)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	at, err := floatParam(r.URL.Query().Get("at"), 1500)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	script.Limit = timeline.Duration(time.Duration(at) * time.Millisecond)

	frames, err := timeline.Run(script, s.timelineConfig(true))
	if err != nil {
		s.badRequest(w, err)
		return
	}
	last := frames[len(frames)-1]
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Goey-State", last.State)
	w.Write([]byte(last.HTML))
}

// scriptFromQuery builds the default script with query overrides.
// Without a reduced parameter the script follows the reported preference.
func (s *Server) scriptFromQuery(r *http.Request) (timeline.Script, error) {
	q := r.URL.Query()
	script := timeline.DefaultScript()
	if v := q.Get("title"); v != "" {
		script.Title = v
	}
	if q.Has("description") {
		script.Description = q.Get("description")
	}
	if v := q.Get("phase"); v != "" {
		if _, err := morph.ParsePhase(v); err != nil {
			return script, err
		}
		script.Phase = v
	}
	if v := q.Get("action"); v != "" {
		script.ActionLabel = v
	}
	if q.Has("reduced") {
		script.Reduced = q.Get("reduced") == "1" || q.Get("reduced") == "true"
	} else {
		script.Reduced = s.reduced.Get()
	}
	return script, nil
}

// reducedMotionBody is the body of the reduced-motion preference routes.
// At is when the client observed the value; it defaults to now.
type reducedMotionBody struct {
	Reduced bool      `json:"reduced"`
	At      time.Time `json:"at"`
	Applied *bool     `json:"applied,omitempty"`
}

func (s *Server) handleReducedMotion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, reducedMotionBody{Reduced: s.reduced.Get(), At: s.reduced.UpdatedAt()})
}

func (s *Server) handleReportReducedMotion(w http.ResponseWriter, r *http.Request) {
	var body reducedMotionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, errors.New("G010").WithDetailf("invalid preference report: %v", err))
		return
	}
	if body.At.IsZero() {
		body.At = time.Now()
	}
	applied := s.reduced.Report(body.Reduced, body.At)
	s.logger.Debug("reduced motion reported", "reduced", body.Reduced, "applied", applied)
	s.writeJSON(w, reducedMotionBody{Reduced: s.reduced.Get(), At: s.reduced.UpdatedAt(), Applied: &applied})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response failed", "error", fmt.Errorf("encode: %w", err))
	}
}

func (s *Server) timelineConfig(html bool) timeline.Config {
	return timeline.Config{
		Toaster: s.config.Toaster,
		HTML:    html,
		Logger:  s.logger,
		Metrics: s.metrics,
	}
}

func floatParam(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New("G010").WithDetailf("invalid number %q", v)
	}
	return f, nil
}

// errorBody is the JSON body of a 400 response.
type errorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	body := errorBody{Code: errors.CodeOf(err), Message: err.Error()}
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		s.logger.Error("error response failed", "error", fmt.Errorf("encode: %w", encErr))
	}
}
