package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "thriftfind"

// Search pipeline Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of search requests by entry point and term source",
		},
		[]string{"entry", "source"}, // entry: text|terms
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of listings returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 24, 50, 100},
		},
		[]string{"entry"},
	)

	CandidatesScanned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidates_scanned",
			Help:      "Number of candidate listings scored per search",
			Buckets:   []float64{0, 10, 50, 100, 200, 500, 1000, 2000},
		},
	)

	CandidateFetchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_fetch_errors_total",
			Help:      "Candidate fetches that failed and degraded to an empty window",
		},
	)

	ExtractionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_requests_total",
			Help:      "Total number of remote term extraction requests",
		},
		[]string{"provider", "model", "status"},
	)

	ExtractionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_request_duration_seconds",
			Help:      "Remote term extraction request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	ExtractionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_errors_total",
			Help:      "Total remote term extraction errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	ExtractionFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_fallbacks_total",
			Help:      "Searches that fell back to the local term extractor",
		},
		[]string{"reason"},
	)

	ExtractionCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_cache_total",
			Help:      "Remote term extraction cache lookups",
		},
		[]string{"result"}, // hit|miss
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers search pipeline metrics. Call once from main.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(
			SearchRequestsTotal,
			SearchResults,
			CandidatesScanned,
			CandidateFetchErrorsTotal,
			ExtractionRequestsTotal,
			ExtractionRequestDuration,
			ExtractionErrorsTotal,
			ExtractionFallbacksTotal,
			ExtractionCacheTotal,
		)
	})
}
