// Package prommetrics exports ipo construction measurements to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	col, err := prommetrics.New(reg)
//	if err != nil { ... }
//	g, err := ipo.New(domains, 2, ipo.WithMetrics(col))
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/covergen/ipo"
)

const namespace = "covergen"

// Collector implements ipo.MetricsCollector on top of client_golang metrics.
type Collector struct {
	builds       *prometheus.CounterVec
	buildLatency *prometheus.HistogramVec
	rows         prometheus.Histogram

	columnLatency prometheus.Histogram
	combinations  *prometheus.CounterVec
	evicted       prometheus.Counter
	poolSize      prometheus.Gauge
}

var _ ipo.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. A nil reg
// selects prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Covering array constructions by status.",
		}, []string{"status"}),
		buildLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of covering array constructions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rows",
			Help:      "Rows per successful construction.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 12),
		}),
		columnLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "column_duration_seconds",
			Help:      "Duration of processing one parameter column.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		combinations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combinations_total",
			Help:      "Required combinations by the phase that covered them.",
		}, []string{"phase"}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evicted_rows_total",
			Help:      "Rows moved to the merge pool by the eviction threshold.",
		}),
		poolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_rows",
			Help:      "Partial rows left in the merge pool after the last column.",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.builds, c.buildLatency, c.rows,
		c.columnLatency, c.combinations, c.evicted, c.poolSize,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordColumn implements ipo.MetricsCollector.
func (c *Collector) RecordColumn(s ipo.ColumnStats, d time.Duration) {
	c.columnLatency.Observe(d.Seconds())
	c.combinations.WithLabelValues("horizontal").Add(float64(s.Horizontal))
	c.combinations.WithLabelValues("vertical").Add(float64(s.Leftover))
	c.evicted.Add(float64(s.Evicted))
	c.poolSize.Set(float64(s.Pool))
}

// RecordBuild implements ipo.MetricsCollector.
func (c *Collector) RecordBuild(s ipo.Stats, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "canceled"
	}
	c.builds.WithLabelValues(status).Inc()
	c.buildLatency.WithLabelValues(status).Observe(d.Seconds())
	if err == nil {
		c.rows.Observe(float64(s.Rows))
	}
}

// Builds returns the build counter for status "success" or "canceled".
func (c *Collector) Builds(status string) prometheus.Counter {
	return c.builds.WithLabelValues(status)
}

// Combinations returns the counter for phase "horizontal" or "vertical".
func (c *Collector) Combinations(phase string) prometheus.Counter {
	return c.combinations.WithLabelValues(phase)
}

// Evicted returns the evicted-rows counter.
func (c *Collector) Evicted() prometheus.Counter { return c.evicted }
