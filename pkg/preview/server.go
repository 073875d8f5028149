package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/goey/pkg/middleware"
	"github.com/vango-dev/goey/pkg/pref"
	"github.com/vango-dev/goey/pkg/schedule"
	"github.com/vango-dev/goey/pkg/telemetry"
	"github.com/vango-dev/goey/pkg/toast"
)

// Config configures a preview server.
type Config struct {
	// Addr is the listen address (default ":7420").
	Addr string

	// Toaster is the configuration toasts are rendered with.
	Toaster toast.Config

	// FrameInterval paces streamed frames (default one animation frame).
	FrameInterval time.Duration

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// Registry collects the server's and the toasts' metrics and backs
	// /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry

	// ReducedMotion is the preference clients report their
	// prefers-reduced-motion setting to. Scripts that do not ask for
	// reduced motion explicitly follow it.
	ReducedMotion *pref.Pref[bool]

	Logger *slog.Logger
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{
		Addr:              ":7420",
		Toaster:           toast.DefaultConfig(),
		FrameInterval:     schedule.FrameInterval,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server is the preview HTTP server.
type Server struct {
	config  Config
	logger  *slog.Logger
	metrics *telemetry.Metrics
	reduced *pref.Pref[bool]
	router  chi.Router
	streams *streamHub

	httpServer *http.Server
}

// New creates a server. Zero fields of cfg take their defaults.
func New(cfg Config) *Server {
	defaults := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	if cfg.Toaster.Position == "" {
		cfg.Toaster = defaults.Toaster
	}
	if cfg.FrameInterval == 0 {
		cfg.FrameInterval = defaults.FrameInterval
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ReducedMotion == nil {
		cfg.ReducedMotion = pref.ReducedMotion()
	}

	s := &Server{
		config:  cfg,
		logger:  cfg.Logger,
		metrics: telemetry.NewMetrics(telemetry.WithRegistry(cfg.Registry)),
		reduced: cfg.ReducedMotion,
	}
	s.streams = newStreamHub(s)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Prometheus(middleware.WithRegistry(s.config.Registry)))
	r.Use(middleware.OpenTelemetry(
		middleware.WithTracerName("goey-preview"),
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
		}),
	))

	r.Get("/healthz", s.handleHealth)
	r.Get("/outline.svg", s.handleOutline)
	r.Get("/toast", s.handleToast)
	r.Get("/ws/frames", s.streams.handle)
	r.Get("/prefs/reduced-motion", s.handleReducedMotion)
	r.Put("/prefs/reduced-motion", s.handleReportReducedMotion)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler { return s.router }

// StreamCount is the number of open frame streams.
func (s *Server) StreamCount() int { return s.streams.count() }

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", "address", s.config.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes open streams and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.streams.closeAll()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("preview server shutdown complete")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
