package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total requests per endpoint, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lbarserve_requests_total",
			Help: "Total API requests received",
		},
		[]string{"endpoint", "method", "status"},
	)

	// request latency in seconds per endpoint/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lbarserve_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// ad selections served, labelled by targeting method
	SelectionCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lbarserve_selections_total",
			Help: "Total ad selections by targeting method",
		},
		[]string{"method"},
	)

	// distribution of targeting scores on served selections
	SelectionScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lbarserve_selection_score",
			Help:    "Histogram of targeting scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// selections that fell through to the random fallback tier
	FallbackCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lbarserve_fallback_total",
			Help: "Total selections served by the random fallback",
		},
	)

	// identity resolutions, labelled by resolution method
	IdentityResolutionCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lbarserve_identity_resolutions_total",
			Help: "Total identity resolutions by method",
		},
		[]string{"method"},
	)

	// ad delivery events recorded, labelled by type
	AdEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lbarserve_ad_events_total",
			Help: "Total ad delivery events recorded",
		},
		[]string{"type"},
	)

	// JSON-RPC errors returned, labelled by error code
	RPCErrorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lbarserve_rpc_errors_total",
			Help: "Total JSON-RPC error responses",
		},
		[]string{"code"},
	)
)

func init() {
	// register all metrics
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		SelectionCount,
		SelectionScore,
		FallbackCount,
		IdentityResolutionCount,
		AdEventCount,
		RPCErrorCount,
	)
}
