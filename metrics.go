package permugo

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
//	    applyCounter   prometheus.Counter
//	    applyHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordApply(n int, parallel bool, duration time.Duration, err error) {
//	    p.applyCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordApply is called after each apply operation.
	// n is the dataset length, parallel reports which algorithm ran,
	// duration is the total time taken, err is nil if successful.
	RecordApply(n int, parallel bool, duration time.Duration, err error)

	// RecordApplyAll is called after each multi-dataset apply operation.
	// datasets is the number of datasets attempted, duration is the total
	// time taken, err is nil if all succeeded.
	RecordApplyAll(datasets int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordApply(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordApplyAll(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ApplyCount      atomic.Int64
	ApplyErrors     atomic.Int64
	ApplyTotalNanos atomic.Int64
	ParallelApplies atomic.Int64
	ElementsMoved   atomic.Int64
	ApplyAllCount   atomic.Int64
	ApplyAllErrors  atomic.Int64
}

// RecordApply implements MetricsCollector.
func (b *BasicMetricsCollector) RecordApply(n int, parallel bool, duration time.Duration, err error) {
	b.ApplyCount.Add(1)
	b.ApplyTotalNanos.Add(duration.Nanoseconds())
	if parallel {
		b.ParallelApplies.Add(1)
	}
	if err != nil {
		b.ApplyErrors.Add(1)
	} else {
		b.ElementsMoved.Add(int64(n))
	}
}

// RecordApplyAll implements MetricsCollector.
func (b *BasicMetricsCollector) RecordApplyAll(datasets int, duration time.Duration, err error) {
	b.ApplyAllCount.Add(1)
	if err != nil {
		b.ApplyAllErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ApplyCount:      b.ApplyCount.Load(),
		ApplyErrors:     b.ApplyErrors.Load(),
		ApplyAvgNanos:   b.getAvgApplyNanos(),
		ParallelApplies: b.ParallelApplies.Load(),
		ElementsMoved:   b.ElementsMoved.Load(),
		ApplyAllCount:   b.ApplyAllCount.Load(),
		ApplyAllErrors:  b.ApplyAllErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgApplyNanos() int64 {
	count := b.ApplyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ApplyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ApplyCount      int64
	ApplyErrors     int64
	ApplyAvgNanos   int64
	ParallelApplies int64
	ElementsMoved   int64
	ApplyAllCount   int64
	ApplyAllErrors  int64
}
