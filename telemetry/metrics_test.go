package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return m, reader
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	found := findMetric(rm, name)
	if found == nil {
		return 0
	}
	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: expected Sum[int64], got %T", name, found.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

// TestMetrics_CallCounterIncrements verifies memoize.call.total counts
// every call.
func TestMetrics_CallCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := FuncMeta{Name: "fn"}

	m.RecordCall(context.Background(), meta, 10*time.Millisecond, false, nil)
	m.RecordCall(context.Background(), meta, 1*time.Millisecond, true, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	if got := counterValue(t, rm, "memoize.call.total"); got != 2 {
		t.Errorf("memoize.call.total = %d, want 2", got)
	}
	if got := counterValue(t, rm, "memoize.cache.hits"); got != 1 {
		t.Errorf("memoize.cache.hits = %d, want 1", got)
	}
}

// TestMetrics_ErrorCounter verifies failures are counted and successes
// are not.
func TestMetrics_ErrorCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := FuncMeta{Name: "fn"}

	m.RecordCall(context.Background(), meta, time.Millisecond, false, nil)
	m.RecordCall(context.Background(), meta, time.Millisecond, false, errors.New("boom"))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	if got := counterValue(t, rm, "memoize.call.errors"); got != 1 {
		t.Errorf("memoize.call.errors = %d, want 1", got)
	}
}

// TestMetrics_DurationHistogram verifies durations are recorded in ms.
func TestMetrics_DurationHistogram(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := FuncMeta{Name: "fn", Profile: "p"}

	m.RecordCall(context.Background(), meta, 250*time.Millisecond, false, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, "memoize.call.duration_ms")
	if found == nil {
		t.Fatal("memoize.call.duration_ms metric not found")
	}
	hist, ok := found.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", found.Data)
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if got := hist.DataPoints[0].Sum; got != 250 {
		t.Errorf("duration sum = %v, want 250", got)
	}
}

// TestMetrics_EvictionCounter verifies eviction recording.
func TestMetrics_EvictionCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := FuncMeta{Name: "fn"}

	m.RecordEviction(context.Background(), meta)
	m.RecordEviction(context.Background(), meta)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	if got := counterValue(t, rm, "memoize.cache.evictions"); got != 2 {
		t.Errorf("memoize.cache.evictions = %d, want 2", got)
	}
}

// TestNoopMetrics verifies the noop implementation is callable.
func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics()
	m.RecordCall(context.Background(), FuncMeta{Name: "fn"}, time.Second, true, nil)
	m.RecordEviction(context.Background(), FuncMeta{Name: "fn"})
}
