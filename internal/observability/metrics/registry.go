package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by the API.
const Namespace = "newsapi"

// HTTP server.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, normalized path and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response body size.",
		Buckets:   prometheus.ExponentialBuckets(128, 4, 8),
	}, []string{"method", "path"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served.",
	})
)

// Search engine. Outcome is one of success, not_found, bad_request,
// unavailable or decode_failed.
var (
	EngineRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "search",
		Name:      "requests_total",
		Help:      "Search engine calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	EngineRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "search",
		Name:      "request_duration_seconds",
		Help:      "Search engine round-trip latency.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"operation"})

	ArticlesIndexed = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "search",
		Name:      "articles_indexed",
		Help:      "Article total last reported by the search engine.",
	})
)

// Relational store and stats cache.
var (
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Database query latency by operation.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"operation"})

	DBConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "db",
		Name:      "connections_in_use",
		Help:      "Pool connections currently in use.",
	})

	DBConnectionsIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "db",
		Name:      "connections_idle",
		Help:      "Idle pool connections.",
	})

	StatsCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "cache",
		Name:      "stats_lookups_total",
		Help:      "Dashboard stats cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "circuit_breaker",
		Name:      "state",
		Help:      "Breaker state by name: 0 closed, 1 half-open, 2 open.",
	}, []string{"name"})
)

// RecordHTTPRequest records one served request. Empty bodies are not
// observed in the size histogram.
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
