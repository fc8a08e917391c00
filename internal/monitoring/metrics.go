package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FetchMetrics tracks the chain API fetch path.
type FetchMetrics struct {
	fetchDuration *prometheus.HistogramVec
	fetchesTotal  *prometheus.CounterVec
	cachedRecords prometheus.Gauge
}

func NewFetchMetrics() *FetchMetrics {
	return &FetchMetrics{
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "btctracker_fetch_duration_seconds",
				Help:    "Duration of chain API fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		fetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "btctracker_fetches_total",
				Help: "Total number of chain API fetches",
			},
			[]string{"status"},
		),
		cachedRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "btctracker_cached_records",
				Help: "Number of transaction records in the address cache",
			},
		),
	}
}

// MustRegister registers all fetch metrics with the provided registry.
func (m *FetchMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.fetchDuration,
		m.fetchesTotal,
		m.cachedRecords,
	)
}

// RecordFetch records one fetch attempt with its outcome and duration.
func (m *FetchMetrics) RecordFetch(status string, seconds float64) {
	m.fetchDuration.WithLabelValues(status).Observe(seconds)
	m.fetchesTotal.WithLabelValues(status).Inc()
}

// SetCachedRecords updates the cache size gauge.
func (m *FetchMetrics) SetCachedRecords(n int) {
	m.cachedRecords.Set(float64(n))
}
