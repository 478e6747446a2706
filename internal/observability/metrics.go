// Package observability holds Prometheus collectors for application-level metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gitmentor_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gitmentor_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// SearchAuditDrops counts best-effort search audit writes that failed.
	SearchAuditDrops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gitmentor_search_audit_drops_total",
		Help: "Total number of search audit records that failed to persist",
	})

	// RatingRecomputes counts mentor rating recomputations.
	RatingRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gitmentor_rating_recomputes_total",
		Help: "Total number of mentor rating recomputations",
	})

	// SearchResults records the result-set size of mentor searches.
	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gitmentor_search_results",
		Help:    "Number of mentors returned per search",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
)

// ObserveQuery records the latency of a database query. Use with defer:
//
//	defer ObserveQuery("select", "mentor_profiles", time.Now())
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
