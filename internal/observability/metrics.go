package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// lookup pipeline.
type Metrics struct {
	Lookups           *prometheus.CounterVec // labels: outcome={cache_hit,success,error}
	RetrievalRequests *prometheus.CounterVec // labels: outcome={success,error}
	RetrievalDuration prometheus.Histogram
	FallbackResults   prometheus.Counter
	Exports           *prometheus.CounterVec // labels: format={csv,xls}

	CacheEntries prometheus.Gauge
	HistorySize  prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackathon_scout",
			Name:      "lookups_total",
			Help:      "Region lookups by outcome.",
		}, []string{"outcome"}),
		RetrievalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackathon_scout",
			Name:      "retrieval_requests_total",
			Help:      "Knowledge engine requests by outcome.",
		}, []string{"outcome"}),
		RetrievalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hackathon_scout",
			Name:      "retrieval_duration_seconds",
			Help:      "Knowledge engine request duration in seconds.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}),
		FallbackResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hackathon_scout",
			Name:      "fallback_results_total",
			Help:      "Lookups that completed with the sentinel-only record set.",
		}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackathon_scout",
			Name:      "exports_total",
			Help:      "Export documents generated by format.",
		}, []string{"format"}),
		CacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hackathon_scout",
			Name:      "cache_entries",
			Help:      "Distinct regions held in the result cache.",
		}),
		HistorySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hackathon_scout",
			Name:      "history_size",
			Help:      "Regions currently on the watch list.",
		}),
	}

	prometheus.MustRegister(
		m.Lookups,
		m.RetrievalRequests,
		m.RetrievalDuration,
		m.FallbackResults,
		m.Exports,
		m.CacheEntries,
		m.HistorySize,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Lookups:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hackathon_scout", Name: "lookups_total"}, []string{"outcome"}),
		RetrievalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hackathon_scout", Name: "retrieval_requests_total"}, []string{"outcome"}),
		RetrievalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "hackathon_scout", Name: "retrieval_duration_seconds"}),
		FallbackResults:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hackathon_scout", Name: "fallback_results_total"}),
		Exports:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hackathon_scout", Name: "exports_total"}, []string{"format"}),
		CacheEntries:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hackathon_scout", Name: "cache_entries"}),
		HistorySize:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hackathon_scout", Name: "history_size"}),
	}
}
