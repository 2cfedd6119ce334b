package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/news/search?q=go", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_Burst(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 3, nil)
	rl.now = func() time.Time { return now }
	h := rl.Middleware(okHandler())

	var codes []int
	for i := 0; i < 5; i++ {
		codes = append(codes, doRequest(h, "192.0.2.1:1000").Code)
	}
	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)

	rec := doRequest(h, "192.0.2.1:1000")
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, doRequest(h, "192.0.2.2:1000").Code)

	// tokens refill over time
	now = now.Add(2 * time.Second)
	assert.Equal(t, http.StatusOK, doRequest(h, "192.0.2.1:1000").Code)
}

func TestRateLimiter_RejectionLogsNothingAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, nil)
	rl.now = func() time.Time { return now }
	h := rl.Middleware(okHandler())

	doRequest(h, "192.0.2.1:1000")
	rec := doRequest(h, "192.0.2.1:1000")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
	assert.Zero(t, buf.Len(), "throttled requests are not server errors")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 10, nil)
	rl.now = func() time.Time { return now }
	h := rl.Middleware(okHandler())

	doRequest(h, "192.0.2.1:1")
	now = now.Add(5 * time.Minute)
	doRequest(h, "192.0.2.2:1")
	assert.Equal(t, 2, rl.ActiveClients())

	removed := rl.Cleanup(time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, rl.ActiveClients())
}

func TestRateLimiter_UnparseableAddressShareKey(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, nil)
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(h, "weird").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "also-weird").Code)
}
