package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/goey/pkg/pref"
	"github.com/vango-dev/goey/pkg/timeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{FrameInterval: time.Nanosecond, Logger: nil})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestOutlineSVG(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s.Handler(), "/outline.svg?pill=120&body=300&height=96&t=1&anchor=center")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`<svg`, `xmlns="http://www.w3.org/2000/svg"`, `<path d="M`, `fill="#ffffff"`, `stroke="none"`} {
		if !strings.Contains(body, want) {
			t.Errorf("svg missing %q: %s", want, body)
		}
	}

	pill := get(t, s.Handler(), "/outline.svg?t=0").Body.String()
	if pill == body {
		t.Error("t=0 rendered the expanded outline")
	}
}

func TestOutlineSVGBadRequest(t *testing.T) {
	tests := []struct {
		path string
		code string
	}{
		{"/outline.svg?anchor=diagonal", "G031"},
		{"/outline.svg?t=half", "G010"},
		{"/toast?phase=fatal", "G032"},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s.Handler(), tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body: %v", err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q (%s)", body.Code, tt.code, body.Message)
			}
		})
	}
}

func TestToastHTML(t *testing.T) {
	rec := get(t, newTestServer(t).Handler(), "/toast?title=Copied&description=&phase=info&at=100")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if state := rec.Header().Get("X-Goey-State"); state != "compact" {
		t.Errorf("state = %q, want compact", state)
	}
	body := rec.Body.String()
	for _, want := range []string{"goey-wrapper", "Copied", `role="status"`, "<svg"} {
		if !strings.Contains(body, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func reportReduced(t *testing.T, h http.Handler, body string) reducedMotionBody {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/prefs/reduced-motion", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var out reducedMotionBody
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("body: %v", err)
	}
	return out
}

func TestReducedMotionReport(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	if state := get(t, h, "/toast?at=100").Header().Get("X-Goey-State"); state == "expanded" {
		t.Fatal("expanded after 100ms without reduced motion")
	}

	out := reportReduced(t, h, `{"reduced": true}`)
	if !out.Reduced || out.Applied == nil || !*out.Applied {
		t.Fatalf("report = %+v", out)
	}
	if state := get(t, h, "/toast?at=100").Header().Get("X-Goey-State"); state != "expanded" {
		t.Errorf("state = %q, want expanded under reported reduced motion", state)
	}
	// An explicit query parameter still wins.
	if state := get(t, h, "/toast?at=100&reduced=0").Header().Get("X-Goey-State"); state == "expanded" {
		t.Error("reduced=0 ignored")
	}

	var cur reducedMotionBody
	if err := json.Unmarshal(get(t, h, "/prefs/reduced-motion").Body.Bytes(), &cur); err != nil || !cur.Reduced {
		t.Errorf("GET = %+v, %v", cur, err)
	}
}

func TestReducedMotionReportPolicy(t *testing.T) {
	p := pref.New("reduced-motion", false)
	s := New(Config{FrameInterval: time.Nanosecond, ReducedMotion: p})
	p.Set(true)

	stale := time.Now().Add(-time.Hour).Format(time.RFC3339)
	out := reportReduced(t, s.Handler(), `{"reduced": false, "at": "`+stale+`"}`)
	if out.Applied == nil || *out.Applied || !out.Reduced {
		t.Errorf("stale report = %+v, want ignored", out)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/prefs/reduced-motion", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed report status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	get(t, s.Handler(), "/toast?title=Hi&description=&at=50")

	body := get(t, s.Handler(), "/metrics").Body.String()
	for _, want := range []string{
		`goey_http_requests_total{code="200",method="GET",route="/toast"} 1`,
		`goey_toasts_shown_total{phase="success"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestFrameStream(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/frames?title=Copied&description=&phase=info"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))

	var frames []timeline.Frame
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Fatalf("ReadMessage() error: %v", err)
			}
			break
		}
		var f timeline.Frame
		if err := json.Unmarshal(data, &f); err != nil {
			t.Fatalf("frame: %v", err)
		}
		frames = append(frames, f)
	}

	if len(frames) < 100 {
		t.Fatalf("frames = %d", len(frames))
	}
	if last := frames[len(frames)-1]; last.State != "dismissed" {
		t.Errorf("last state = %s", last.State)
	}
	for i, f := range frames {
		if f.Index != i {
			t.Fatalf("frame %d has index %d", i, f.Index)
		}
	}
}

func TestShutdownClosesStreams(t *testing.T) {
	s := New(Config{FrameInterval: time.Hour})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/frames"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer conn.Close()
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if s.StreamCount() != 1 {
		t.Fatalf("StreamCount() = %d", s.StreamCount())
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if s.StreamCount() != 0 {
		t.Errorf("StreamCount() = %d after shutdown", s.StreamCount())
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("stream still open")
	}
}
