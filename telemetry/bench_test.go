package telemetry

import (
	"context"
	"io"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// BenchmarkMetrics_RecordCall measures the recording hot path.
func BenchmarkMetrics_RecordCall(b *testing.B) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("bench"))
	if err != nil {
		b.Fatal(err)
	}
	meta := FuncMeta{Name: "fn"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordCall(ctx, meta, time.Millisecond, i%2 == 0, nil)
	}
}

// BenchmarkLogger_Filtered measures a message dropped by level filtering.
func BenchmarkLogger_Filtered(b *testing.B) {
	l := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug(ctx, "dropped", Field{Key: "i", Value: i})
	}
}

// BenchmarkLogger_Emitted measures a fully serialized entry.
func BenchmarkLogger_Emitted(b *testing.B) {
	l := NewLoggerWithWriter("debug", io.Discard).WithFunc(FuncMeta{Name: "fn"})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug(ctx, "memoized call completed", Field{Key: "duration_ms", Value: 1.0})
	}
}
