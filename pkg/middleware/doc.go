// Package middleware provides the HTTP middleware the goey preview server
// runs behind: Prometheus request metrics and OpenTelemetry server spans.
//
// Both are plain func(http.Handler) http.Handler values, so they mount on
// any router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("goey-preview")))
//
// Requests are labeled by the chi route pattern when one matched, so
// /outline.svg?t=0.5 and /outline.svg?t=0.6 share a series.
//
// # Context Propagation
//
// The tracing middleware replaces the request context with the span's, so
// handlers that pass r.Context() on inherit the trace:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    span := middleware.SpanFromRequest(r)
//	    span.SetAttributes(attribute.Int("goey.frames", n))
//	}
package middleware
