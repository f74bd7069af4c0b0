package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics records memoized call metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording never blocks the call path.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCall records one memoized call with its duration, whether it
	// was served from cache, and any error from the wrapped function.
	RecordCall(ctx context.Context, meta FuncMeta, duration time.Duration, hit bool, err error)

	// RecordEviction records the removal of a cache entry, whether by
	// capacity pressure or failed settlement.
	RecordEviction(ctx context.Context, meta FuncMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter         metric.Meter
	callCount     metric.Int64Counter
	hitCount      metric.Int64Counter
	errorCount    metric.Int64Counter
	evictionCount metric.Int64Counter
	durationHist  metric.Float64Histogram
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	callCount, err := meter.Int64Counter(
		"memoize.call.total",
		metric.WithDescription("Total number of memoized calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	hitCount, err := meter.Int64Counter(
		"memoize.cache.hits",
		metric.WithDescription("Calls served from cache"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"memoize.call.errors",
		metric.WithDescription("Calls whose wrapped function failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	evictionCount, err := meter.Int64Counter(
		"memoize.cache.evictions",
		metric.WithDescription("Cache entries removed"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"memoize.call.duration_ms",
		metric.WithDescription("Memoized call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:         meter,
		callCount:     callCount,
		hitCount:      hitCount,
		errorCount:    errorCount,
		evictionCount: evictionCount,
		durationHist:  durationHist,
	}, nil
}

// RecordCall records metrics for one memoized call.
func (m *metricsImpl) RecordCall(ctx context.Context, meta FuncMeta, duration time.Duration, hit bool, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.callCount.Add(ctx, 1, opt)
	if hit {
		m.hitCount.Add(ctx, 1, opt)
	}
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordEviction records a removed cache entry.
func (m *metricsImpl) RecordEviction(ctx context.Context, meta FuncMeta) {
	m.evictionCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordCall(ctx context.Context, meta FuncMeta, duration time.Duration, hit bool, err error) {
}

func (noopMetrics) RecordEviction(ctx context.Context, meta FuncMeta) {}

// NoopMetrics returns a Metrics that records nothing.
func NoopMetrics() Metrics {
	return noopMetrics{}
}
