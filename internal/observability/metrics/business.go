package metrics

import (
	"time"
)

// RecordEngineRequest records one outbound search engine call.
func RecordEngineRequest(operation, outcome string, duration time.Duration) {
	EngineRequestsTotal.WithLabelValues(operation, outcome).Inc()
	EngineRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateArticlesIndexed sets the indexed-article gauge. Negative totals are
// ignored.
func UpdateArticlesIndexed(total int64) {
	if total < 0 {
		return
	}
	ArticlesIndexed.Set(float64(total))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_crawl_stats").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

// RecordStatsCache records a stats cache lookup result: hit, miss or error.
func RecordStatsCache(result string) {
	StatsCacheTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState exports a breaker's gobreaker.State value.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}
