package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardify_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cardify_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PublicCardViews counts successful public card resolutions by template.
	PublicCardViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardify_public_card_views_total",
		Help: "Total number of public card views by template",
	}, []string{"template"})

	// ShareTokenCollisions counts share-token mint retries caused by a
	// unique-constraint collision. Expected to stay at zero in practice.
	ShareTokenCollisions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cardify_share_token_collisions_total",
		Help: "Total number of share token collisions during card creation",
	})

	// CardsCreated counts created cards by category.
	CardsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardify_cards_created_total",
		Help: "Total number of cards created by category",
	}, []string{"category"})

	// AssistRequests counts AI assist calls by outcome.
	AssistRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardify_assist_requests_total",
		Help: "Total number of AI assist requests by outcome",
	}, []string{"outcome"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
