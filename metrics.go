package rgbkmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter   prometheus.Counter
//	    runHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(pixels, k, iters int, duration time.Duration, err error) {
//	    p.runCounter.Inc()
//	    p.runHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// duration is the total time taken, err is nil if successful.
	RecordRun(pixels, k, iters int, duration time.Duration, err error)

	// RecordEmptyClusters is called after a successful run that ended with
	// n > 0 centroids owning no pixel.
	RecordEmptyClusters(n int)

	// RecordBatch is called after each batch.
	// count is the number of jobs, failed is the number that failed,
	// duration is the total time taken.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEmptyClusters(int)                       {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	RunPixels       atomic.Int64
	RunIterations   atomic.Int64
	EmptyClusters   atomic.Int64
	BatchCount      atomic.Int64
	BatchJobs       atomic.Int64
	BatchFailed     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(pixels, _, iters int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.RunPixels.Add(int64(pixels))
	b.RunIterations.Add(int64(iters))
}

// RecordEmptyClusters implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmptyClusters(n int) {
	b.EmptyClusters.Add(int64(n))
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchJobs.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   b.getAvgRunNanos(),
		RunPixels:     b.RunPixels.Load(),
		RunIterations: b.RunIterations.Load(),
		EmptyClusters: b.EmptyClusters.Load(),
		BatchCount:    b.BatchCount.Load(),
		BatchJobs:     b.BatchJobs.Load(),
		BatchFailed:   b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
	RunPixels     int64
	RunIterations int64
	EmptyClusters int64
	BatchCount    int64
	BatchJobs     int64
	BatchFailed   int64
}
