package seekgen

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each search.
	// found reports whether the pattern matched.
	RecordSearch(found bool, duration time.Duration)

	// RecordGenerate is called after each generated value.
	// draws is the number of 32-bit values taken from the source,
	// err is nil if successful.
	RecordGenerate(draws int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(bool, time.Duration)         {}
func (NoopMetricsCollector) RecordGenerate(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchHits       atomic.Int64
	SearchTotalNanos atomic.Int64
	GenerateCount    atomic.Int64
	GenerateDraws    atomic.Int64
	GenerateErrors   atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(found bool, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if found {
		b.SearchHits.Add(1)
	}
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(draws int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateDraws.Add(int64(draws))
	if err != nil {
		b.GenerateErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		SearchCount:    b.SearchCount.Load(),
		SearchHits:     b.SearchHits.Load(),
		GenerateCount:  b.GenerateCount.Load(),
		GenerateDraws:  b.GenerateDraws.Load(),
		GenerateErrors: b.GenerateErrors.Load(),
	}
	if stats.SearchCount > 0 {
		stats.SearchAvgNanos = b.SearchTotalNanos.Load() / stats.SearchCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchHits     int64
	SearchAvgNanos int64
	GenerateCount  int64
	GenerateDraws  int64
	GenerateErrors int64
}
