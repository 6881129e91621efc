package vecsim

import (
	"sync/atomic"
	"time"
)

// Op names a single-pair or in-place operation for metrics.
type Op string

const (
	OpCosine     Op = "cosine"
	OpCosineSIMD Op = "cosine_simd"
	OpEuclidean  Op = "euclidean"
	OpDot        Op = "dot"
	OpNormalize  Op = "normalize"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOp is called after each single-pair or normalize operation.
	// err is nil if successful.
	RecordOp(op Op, duration time.Duration, err error)

	// RecordBatch is called after each batch cosine operation.
	// count is the number of rows requested.
	RecordBatch(count int, duration time.Duration, err error)

	// RecordTopK is called after each top-k selection.
	// k is the number of neighbors requested, returned the number produced.
	RecordTopK(k, returned int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOp(Op, time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordTopK(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpCount         atomic.Int64
	OpErrors        atomic.Int64
	OpTotalNanos    atomic.Int64
	BatchCount      atomic.Int64
	BatchRows       atomic.Int64
	BatchErrors     atomic.Int64
	BatchTotalNanos atomic.Int64
	TopKCount       atomic.Int64
	TopKErrors      atomic.Int64
	TopKReturned    atomic.Int64
	TopKTotalNanos  atomic.Int64
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(_ Op, duration time.Duration, err error) {
	b.OpCount.Add(1)
	b.OpTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
		return
	}
	b.BatchRows.Add(int64(count))
}

// RecordTopK implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTopK(_, returned int, duration time.Duration, err error) {
	b.TopKCount.Add(1)
	b.TopKTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TopKErrors.Add(1)
		return
	}
	b.TopKReturned.Add(int64(returned))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OpCount:       b.OpCount.Load(),
		OpErrors:      b.OpErrors.Load(),
		OpAvgNanos:    avg(b.OpTotalNanos.Load(), b.OpCount.Load()),
		BatchCount:    b.BatchCount.Load(),
		BatchRows:     b.BatchRows.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchAvgNanos: avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
		TopKCount:     b.TopKCount.Load(),
		TopKErrors:    b.TopKErrors.Load(),
		TopKReturned:  b.TopKReturned.Load(),
		TopKAvgNanos:  avg(b.TopKTotalNanos.Load(), b.TopKCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpCount       int64
	OpErrors      int64
	OpAvgNanos    int64
	BatchCount    int64
	BatchRows     int64
	BatchErrors   int64
	BatchAvgNanos int64
	TopKCount     int64
	TopKErrors    int64
	TopKReturned  int64
	TopKAvgNanos  int64
}
