package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsRecordLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.ToastShown("success")
	m.ToastShown("error")
	m.ToastDismissed("auto", 4*time.Second)

	if got := metricCounterValue(t, m.shown.WithLabelValues("success")); got != 1 {
		t.Errorf("shown{success} = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.dismissed.WithLabelValues("auto")); got != 1 {
		t.Errorf("dismissed{auto} = %v, want 1", got)
	}
	if got := metricGaugeValue(t, m.active); got != 1 {
		t.Errorf("active = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.lifetime); got != 1 {
		t.Errorf("lifetime samples = %d, want 1", got)
	}
}

func TestMetricsAnimationsAndFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	m.AnimationStarted("expand")
	m.AnimationStarted("expand")
	m.AnimationSuperseded("collapse")
	m.LayoutCorrection()
	m.ContentRenderFailure()
	m.ActionFailure()
	m.ActionFailure()

	if got := metricCounterValue(t, m.animStarted.WithLabelValues("expand")); got != 2 {
		t.Errorf("animations_started{expand} = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.animSuperseded.WithLabelValues("collapse")); got != 1 {
		t.Errorf("animations_superseded{collapse} = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.corrections); got != 1 {
		t.Errorf("layout_corrections = %v", got)
	}
	if got := metricCounterValue(t, m.renderFailures); got != 1 {
		t.Errorf("content_render_failures = %v", got)
	}
	if got := metricCounterValue(t, m.actionFailures); got != 2 {
		t.Errorf("action_failures = %v", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_animations_started_total" {
			found = true
		}
	}
	if !found {
		t.Error("namespace not applied to metric names")
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.ToastShown("info")
	m.ToastDismissed("host", time.Second)
	m.AnimationStarted("squish")
	m.AnimationSuperseded("squish")
	m.LayoutCorrection()
	m.ContentRenderFailure()
	m.ActionFailure()
}
