package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics, labelled by route and status code.
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buzz_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "buzz_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Live-estimate cache metrics.
var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buzz_live_cache_hits_total",
		Help: "Live busyness cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buzz_live_cache_misses_total",
		Help: "Live busyness cache misses (recomputes)",
	})
)

// Aggregation metrics.
var (
	SnapshotsAggregated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buzz_snapshots_aggregated_total",
		Help: "Occupancy snapshots consumed by the aggregator",
	})

	SeededSnapshots = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buzz_seeded_snapshots_total",
		Help: "Synthetic seed snapshots written by the refresher",
	})
)
