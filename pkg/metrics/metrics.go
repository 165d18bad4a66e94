package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	RateWaits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_governor_waits_total",
			Help: "Number of times a caller waited for a rate limit slot",
		},
	)
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Outgoing place search requests by outcome",
		},
		[]string{"outcome"}, // ok|error
	)
	SearchBatchesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_batches_skipped_total",
			Help: "Number of category batches skipped after a provider error",
		},
	)
	PlanRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_requests_total",
			Help: "Plan requests by outcome",
		},
		[]string{"outcome"}, // ok|no_places|error
	)
)

func MustRegister() {
	prometheus.MustRegister(
		CacheOps, CacheSize,
		RateWaits, SearchRequests, SearchBatchesSkipped, PlanRequests,
	)
}
