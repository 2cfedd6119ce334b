package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantAllow   string
		wantMethods bool
	}{
		{name: "same origin", origins: []string{"https://news.example"}, method: http.MethodGet, wantStatus: 200},
		{name: "allowed origin", origins: []string{"https://news.example/"}, method: http.MethodGet, origin: "https://news.example", wantStatus: 200, wantAllow: "https://news.example"},
		{name: "disallowed origin", origins: []string{"https://news.example"}, method: http.MethodGet, origin: "https://evil.example", wantStatus: 200},
		{name: "wildcard", origins: []string{"*"}, method: http.MethodGet, origin: "https://anything.example", wantStatus: 200, wantAllow: "*"},
		{name: "preflight", origins: []string{"https://news.example"}, method: http.MethodOptions, origin: "https://news.example", preflight: true, wantStatus: 204, wantAllow: "https://news.example", wantMethods: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORS(DefaultCORSConfig(tt.origins))(okHandler())
			req := httptest.NewRequest(tt.method, "/api/news", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
			if tt.wantMethods {
				assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
