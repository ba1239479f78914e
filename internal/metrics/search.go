package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peoplesearch",
			Name:      "searches_total",
			Help:      "Total number of search invocations",
		},
		[]string{"collection"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "peoplesearch",
			Name:      "search_duration_seconds",
			Help:      "Search pipeline duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"collection"},
	)

	RecordsScored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "peoplesearch",
			Name:      "records_scored_total",
			Help:      "Total records run through the relevance scorer",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(RecordsScored)
	searchMetricsRegistered = true
}
