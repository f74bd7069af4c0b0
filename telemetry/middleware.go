package telemetry

import (
	"context"
	"time"

	"github.com/amit08255/micro-memoize/cache"
)

// CallFunc is the signature for an instrumented memoized call. hit
// reports whether the result came from cache.
type CallFunc func(ctx context.Context, meta FuncMeta, args ...any) (result any, hit bool, err error)

// Middleware wraps memoized calls with tracing, metrics, and logging.
//
// Contract:
// - Concurrency: Wrap() returns a thread-safe CallFunc.
// - Errors: errors from the wrapped call are recorded and propagated unchanged.
// - Ownership: arguments and results pass through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromProvider creates a Middleware from a Provider.
func MiddlewareFromProvider(p Provider) (*Middleware, error) {
	metrics, err := NewMetrics(p.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(newTracer(p.Tracer()), metrics, p.Logger()), nil
}

// Wrap wraps a CallFunc with a span, call metrics, and a log line.
func (m *Middleware) Wrap(fn CallFunc) CallFunc {
	return func(ctx context.Context, meta FuncMeta, args ...any) (any, bool, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		result, hit, err := fn(ctx, meta, args...)

		duration := time.Since(start)
		m.tracer.EndSpan(span, hit, err)
		m.metrics.RecordCall(ctx, meta, duration, hit, err)

		logger := m.logger.WithFunc(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
			{Key: "cache_hit", Value: hit},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "memoized call failed", fields...)
		} else {
			logger.Debug(ctx, "memoized call completed", fields...)
		}

		return result, hit, err
	}
}

// CacheHooks bundles cache lifecycle callbacks that feed metrics, for
// wiring into a wrapper's options.
type CacheHooks struct {
	OnCacheAdd    cache.CallbackFunc
	OnCacheChange cache.CallbackFunc
}

// NewCacheHooks builds lifecycle callbacks that record evictions for
// meta: an insertion that does not grow the cache displaced the oldest
// entry, and a shrink observed on change is a settlement-failure
// removal. The callbacks rely on the wrapper serializing cache access,
// as the core requires; they are not independently goroutine-safe.
//
// Call hits are recorded by Wrap, not here, so instrumenting both does
// not double count.
func NewCacheHooks(metrics Metrics, meta FuncMeta) (CacheHooks, error) {
	if meta.Name == "" {
		return CacheHooks{}, ErrMissingFuncName
	}

	lastSize := 0
	return CacheHooks{
		OnCacheAdd: func(c *cache.Cache, o cache.Options, memoized any) {
			size := c.Size()
			if size == lastSize && size > 0 {
				metrics.RecordEviction(context.Background(), meta)
			}
			lastSize = size
		},
		OnCacheChange: func(c *cache.Cache, o cache.Options, memoized any) {
			size := c.Size()
			if size < lastSize {
				metrics.RecordEviction(context.Background(), meta)
			}
			lastSize = size
		},
	}, nil
}
