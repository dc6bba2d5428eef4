// SPDX-License-Identifier: MIT

package dataio

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Format labels used on every metric.
const (
	FormatTabular    = "tabular"
	FormatCovariance = "covariance"
	FormatFast       = "fast"
	FormatExcel      = "excel"
	FormatKnowledge  = "knowledge"
)

// Metrics counts reader activity. A nil *Metrics records nothing.
type Metrics struct {
	rowsRead     *prometheus.CounterVec
	parseErrors  *prometheus.CounterVec
	readDuration *prometheus.HistogramVec
}

// NewMetrics registers the reader metrics on reg. A nil reg creates unregistered
// collectors, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rowsRead: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvdata",
			Name:      "rows_read_total",
			Help:      "Data rows loaded, by input format.",
		}, []string{"format"}),
		parseErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvdata",
			Name:      "parse_errors_total",
			Help:      "Reads that failed, by input format.",
		}, []string{"format"}),
		readDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvdata",
			Name:      "read_duration_seconds",
			Help:      "Wall time of complete reads, by input format.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"format"}),
	}
}

// observe records one finished read.
func (m *Metrics) observe(format string, start time.Time, rows int, err error) {
	if m == nil {
		return
	}
	m.readDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	if err != nil {
		m.parseErrors.WithLabelValues(format).Inc()
		return
	}
	m.rowsRead.WithLabelValues(format).Add(float64(rows))
}

// Collectors exposes the underlying collectors, for registries built by the caller.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.rowsRead, m.parseErrors, m.readDuration}
}
