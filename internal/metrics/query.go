package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query engine Prometheus metrics.
var (
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "runstore",
			Name:      "query_duration_seconds",
			Help:      "Backend query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"backend", "operation"},
	)

	QueryResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "runstore",
			Name:      "query_results",
			Help:      "Number of runs returned per query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"operation"},
	)

	QueryErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "runstore",
			Name:      "query_errors_total",
			Help:      "Total failed queries by error class",
		},
		[]string{"operation", "code"},
	)
)

func init() {
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(QueryResults)
	prometheus.MustRegister(QueryErrorsTotal)
}
