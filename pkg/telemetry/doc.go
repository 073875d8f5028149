// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for toast lifecycles.
//
// Metrics are created once per registry and passed explicitly to the
// packages that record them:
//
//	reg := prometheus.NewRegistry()
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	t := toast.New(host, loop, toast.WithMetrics(m))
//
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// Every recording method accepts a nil *Metrics, so metrics stay optional.
//
// Tracing uses the global OpenTelemetry tracer provider unless a tracer is
// supplied. Configure it in main():
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
package telemetry
