package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "goey"

// Span attribute keys.
const (
	AttrToastID = attribute.Key("goey.toast.id")
	AttrPhase   = attribute.Key("goey.toast.phase")
	AttrOutcome = attribute.Key("goey.promise.outcome")
	AttrReason  = attribute.Key("goey.dismiss.reason")
)

// Tracer wraps an OpenTelemetry tracer with toast-specific spans. The zero
// value and a nil *Tracer use the global provider.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer resolves a named tracer from the global provider. An empty name
// uses "goey".
func NewTracer(name string) *Tracer {
	if name == "" {
		name = defaultTracerName
	}
	return &Tracer{tracer: otel.Tracer(name)}
}

// TracerFrom wraps an existing tracer.
func TracerFrom(t trace.Tracer) *Tracer {
	return &Tracer{tracer: t}
}

func (t *Tracer) resolve() trace.Tracer {
	if t == nil || t.tracer == nil {
		return otel.Tracer(defaultTracerName)
	}
	return t.tracer
}

// PromiseSpan tracks one promise-driven toast from loading to settlement.
type PromiseSpan struct {
	span trace.Span
}

// StartPromise starts a "goey.promise" span.
func (t *Tracer) StartPromise(ctx context.Context, id, loadingTitle string) (context.Context, *PromiseSpan) {
	ctx, span := t.resolve().Start(ctx, "goey.promise",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			AttrToastID.String(id),
			attribute.String("goey.promise.loading", loadingTitle),
		),
	)
	return ctx, &PromiseSpan{span: span}
}

// Resolved ends the span successfully.
func (p *PromiseSpan) Resolved() {
	p.span.SetAttributes(AttrOutcome.String("success"))
	p.span.SetStatus(codes.Ok, "")
	p.span.End()
}

// Rejected records err and ends the span with an error status. A rejected
// promise is an expected outcome for the toast, but it is still an error
// for the traced operation.
func (p *PromiseSpan) Rejected(err error) {
	p.span.SetAttributes(AttrOutcome.String("error"))
	if err != nil {
		p.span.RecordError(err)
		p.span.SetStatus(codes.Error, err.Error())
	} else {
		p.span.SetStatus(codes.Error, "rejected")
	}
	p.span.End()
}

// Lifecycle adds a toast lifecycle event (expanded, collapsed, dismissed)
// to the span in ctx, if any.
func Lifecycle(ctx context.Context, event, id string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("goey.toast."+event, trace.WithAttributes(append(attrs, AttrToastID.String(id))...))
}

// StartToast starts a "goey.toast" span covering one toast from show to
// removal. Lifecycle events are added to it through the returned context.
func (t *Tracer) StartToast(ctx context.Context, id, phase string) (context.Context, trace.Span) {
	return t.resolve().Start(ctx, "goey.toast",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(AttrToastID.String(id), AttrPhase.String(phase)),
	)
}
