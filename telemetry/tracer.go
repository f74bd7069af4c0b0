package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FuncMeta identifies a memoized function for telemetry purposes.
type FuncMeta struct {
	Name    string // function name (required)
	Profile string // statistics profile, when one is configured (optional)
}

// SpanName returns the deterministic span name for this function.
// Format: memoize.call.<name>
func (m FuncMeta) SpanName() string {
	return "memoize.call." + m.Name
}

// attributes returns the common metric/span attributes for the function.
func (m FuncMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("memoize.func", m.Name),
	}
	if m.Profile != "" {
		attrs = append(attrs, attribute.String("memoize.profile", m.Profile))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing with memoization span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a memoized call.
	StartSpan(ctx context.Context, meta FuncMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the cache outcome and any error.
	EndSpan(span trace.Span, hit bool, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with the function metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta FuncMeta) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(meta.attributes()...),
	)
}

// EndSpan records whether the call was served from cache, marks the span
// status from err, and ends it.
func (t *tracerImpl) EndSpan(span trace.Span, hit bool, err error) {
	span.SetAttributes(attribute.Bool("memoize.cache.hit", hit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
