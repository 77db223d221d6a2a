package geocluster

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
//	    reduceCounter   prometheus.Counter
//	    reduceHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordReduce(algorithm string, k int, duration time.Duration, err error) {
//	    p.reduceCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSearch is called after each closest-pair search.
	// n is the number of clusters searched, duration is the time taken,
	// err is nil if successful.
	RecordSearch(n int, duration time.Duration, err error)

	// RecordReduce is called after each clustering run.
	// algorithm names the clusterer, k is the requested cluster count.
	RecordReduce(algorithm string, k int, duration time.Duration, err error)

	// RecordSweep is called after each distortion sweep.
	RecordSweep(minK, maxK int, duration time.Duration, err error)

	// RecordLoad is called after each table load.
	// rows is the number of rows decoded, 0 on failure.
	RecordLoad(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordReduce(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSweep(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	ReduceCount      atomic.Int64
	ReduceErrors     atomic.Int64
	ReduceTotalNanos atomic.Int64
	SweepCount       atomic.Int64
	SweepErrors      atomic.Int64
	SweepTotalNanos  atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadRows         atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(n int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordReduce implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReduce(algorithm string, k int, duration time.Duration, err error) {
	b.ReduceCount.Add(1)
	b.ReduceTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReduceErrors.Add(1)
	}
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(minK, maxK int, duration time.Duration, err error) {
	b.SweepCount.Add(1)
	b.SweepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadRows.Add(int64(rows))
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		ReduceCount:    b.ReduceCount.Load(),
		ReduceErrors:   b.ReduceErrors.Load(),
		ReduceAvgNanos: b.getAvgReduceNanos(),
		SweepCount:     b.SweepCount.Load(),
		SweepErrors:    b.SweepErrors.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadRows:       b.LoadRows.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgReduceNanos() int64 {
	count := b.ReduceCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReduceTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	ReduceCount    int64
	ReduceErrors   int64
	ReduceAvgNanos int64
	SweepCount     int64
	SweepErrors    int64
	LoadCount      int64
	LoadErrors     int64
	LoadRows       int64
}
