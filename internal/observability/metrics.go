package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "murmur_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// SignupsTotal counts account registrations by outcome.
	SignupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_signups_total",
		Help: "Total number of signup attempts by outcome",
	}, []string{"outcome"})

	// MicropostsCreatedTotal counts published microposts.
	MicropostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "murmur_microposts_created_total",
		Help: "Total number of microposts created",
	})

	// FollowEventsTotal counts follow graph mutations by action.
	FollowEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_follow_events_total",
		Help: "Total number of follow graph mutations by action",
	}, []string{"action"})

	// FeedQueryLatency records feed assembly latency in seconds.
	FeedQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "murmur_feed_query_latency_seconds",
		Help:    "Feed query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
