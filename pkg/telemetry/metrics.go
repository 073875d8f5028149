package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "goey").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for toast lifetime.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the lifetime histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "goey",
		Buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30, 60},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the toast collectors.
//
// Metrics collected:
//   - goey_toasts_shown_total: toasts shown by initial phase
//   - goey_toasts_dismissed_total: toasts removed by reason
//   - goey_animations_started_total: animation drivers started by kind
//   - goey_animations_superseded_total: drivers stopped by a newer start
//   - goey_layout_corrections_total: layout correction passes run
//   - goey_content_render_failures_total: toast content panics recovered
//   - goey_action_failures_total: action handler panics recovered
//   - goey_active_toasts: toasts currently mounted
//   - goey_toast_lifetime_seconds: time from show to dismissal
type Metrics struct {
	shown          *prometheus.CounterVec
	dismissed      *prometheus.CounterVec
	animStarted    *prometheus.CounterVec
	animSuperseded *prometheus.CounterVec
	corrections    prometheus.Counter
	renderFailures prometheus.Counter
	actionFailures prometheus.Counter
	active         prometheus.Gauge
	lifetime       prometheus.Histogram
}

// NewMetrics registers the collectors. Calling it twice with the same
// registry panics, as with any duplicate Prometheus registration.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, labels)
	}
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	return &Metrics{
		shown:          counterVec("toasts_shown_total", "Total toasts shown by initial phase", "phase"),
		dismissed:      counterVec("toasts_dismissed_total", "Total toasts removed by reason", "reason"),
		animStarted:    counterVec("animations_started_total", "Total animation drivers started by kind", "kind"),
		animSuperseded: counterVec("animations_superseded_total", "Total animation drivers stopped by a newer animation", "kind"),
		corrections:    counter("layout_corrections_total", "Total layout correction passes"),
		renderFailures: counter("content_render_failures_total", "Total toast content render panics recovered"),
		actionFailures: counter("action_failures_total", "Total action handler panics recovered"),

		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_toasts",
			Help:        "Number of mounted toasts",
			ConstLabels: config.ConstLabels,
		}),

		lifetime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toast_lifetime_seconds",
			Help:        "Time from show to dismissal in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// ToastShown records a newly mounted toast.
func (m *Metrics) ToastShown(phase string) {
	if m == nil {
		return
	}
	m.shown.WithLabelValues(phase).Inc()
	m.active.Inc()
}

// ToastDismissed records a removed toast and how long it lived.
func (m *Metrics) ToastDismissed(reason string, lifetime time.Duration) {
	if m == nil {
		return
	}
	m.dismissed.WithLabelValues(reason).Inc()
	m.active.Dec()
	m.lifetime.Observe(lifetime.Seconds())
}

// AnimationStarted records a driver start.
func (m *Metrics) AnimationStarted(kind string) {
	if m == nil {
		return
	}
	m.animStarted.WithLabelValues(kind).Inc()
}

// AnimationSuperseded records a driver stopped by a newer start.
func (m *Metrics) AnimationSuperseded(kind string) {
	if m == nil {
		return
	}
	m.animSuperseded.WithLabelValues(kind).Inc()
}

// LayoutCorrection records one coalesced correction pass.
func (m *Metrics) LayoutCorrection() {
	if m == nil {
		return
	}
	m.corrections.Inc()
}

// ContentRenderFailure records a recovered content panic.
func (m *Metrics) ContentRenderFailure() {
	if m == nil {
		return
	}
	m.renderFailures.Inc()
}

// ActionFailure records a recovered action handler panic.
func (m *Metrics) ActionFailure() {
	if m == nil {
		return
	}
	m.actionFailures.Inc()
}
