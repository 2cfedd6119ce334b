package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEngineRequest(t *testing.T) {
	before := testutil.ToFloat64(EngineRequestsTotal.WithLabelValues("search", "success"))

	RecordEngineRequest("search", "success", 15*time.Millisecond)
	RecordEngineRequest("search", "success", 25*time.Millisecond)

	after := testutil.ToFloat64(EngineRequestsTotal.WithLabelValues("search", "success"))
	assert.Equal(t, before+2, after)
}

func TestUpdateArticlesIndexed(t *testing.T) {
	UpdateArticlesIndexed(45)
	assert.Equal(t, float64(45), testutil.ToFloat64(ArticlesIndexed))

	UpdateArticlesIndexed(-1)
	assert.Equal(t, float64(45), testutil.ToFloat64(ArticlesIndexed), "negative totals are ignored")
}

func TestRecordDBQuery(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDBQuery("select_crawl_stats", 3*time.Millisecond)
	})
}

func TestUpdateDBConnectionStats(t *testing.T) {
	UpdateDBConnectionStats(3, 7)
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionsActive))
	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionsIdle))
}

func TestRecordStatsCache(t *testing.T) {
	tests := []string{"hit", "miss", "error"}
	for _, result := range tests {
		t.Run(result, func(t *testing.T) {
			before := testutil.ToFloat64(StatsCacheTotal.WithLabelValues(result))
			RecordStatsCache(result)
			assert.Equal(t, before+1, testutil.ToFloat64(StatsCacheTotal.WithLabelValues(result)))
		})
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/news", "200"))
	RecordHTTPRequest("GET", "/api/news", "200", 10*time.Millisecond, 512)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/news", "200")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("database", 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))

	SetCircuitBreakerState("database", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))
}
