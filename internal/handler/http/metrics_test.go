package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"news-api/internal/observability/metrics"
)

func TestMetricsMiddleware_NormalizesArticleIDs(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"title":"t"}`))
	}))

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/news/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a1", "b2", "c3"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/news/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		label  string
	}{
		{name: "bad request", status: http.StatusBadRequest, label: "400"},
		{name: "service unavailable", status: http.StatusServiceUnavailable, label: "503"},
		{name: "implicit ok", status: 0, label: "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte("x"))
			}))

			counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/news/search", tt.label)
			before := testutil.ToFloat64(counter)

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/news/search?q=go", nil))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestMetricsMiddleware_InFlight(t *testing.T) {
	var during float64
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.HTTPRequestsInFlight)
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.HTTPRequestsInFlight)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}

func TestMetricsHandler(t *testing.T) {
	MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "newsapi_http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="/api/health"`)
}
