package ipo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives construction measurements. Implement it to feed a
// monitoring system; see package prommetrics for Prometheus.
type MetricsCollector interface {
	// RecordColumn is called after each column's vertical phase.
	RecordColumn(c ColumnStats, duration time.Duration)

	// RecordBuild is called once per construction attempt; err is non-nil when
	// the attempt was canceled.
	RecordBuild(s Stats, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordColumn(ColumnStats, time.Duration) {}
func (NoopMetricsCollector) RecordBuild(Stats, time.Duration, error) {}

// BasicMetricsCollector keeps in-memory counters; safe for concurrent use.
type BasicMetricsCollector struct {
	Builds       atomic.Int64
	BuildErrors  atomic.Int64
	BuildNanos   atomic.Int64
	Rows         atomic.Int64
	Columns      atomic.Int64
	ColumnNanos  atomic.Int64
	Requirements atomic.Int64
	Leftover     atomic.Int64
	Evicted      atomic.Int64
}

// RecordColumn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordColumn(c ColumnStats, duration time.Duration) {
	b.Columns.Add(1)
	b.ColumnNanos.Add(duration.Nanoseconds())
	b.Requirements.Add(int64(c.Requirements))
	b.Leftover.Add(int64(c.Leftover))
	b.Evicted.Add(int64(c.Evicted))
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(s Stats, duration time.Duration, err error) {
	b.Builds.Add(1)
	b.BuildNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.Rows.Add(int64(s.Rows))
}
