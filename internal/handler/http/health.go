// Package http holds the cross-cutting HTTP layer of the news API: access
// logging, panic recovery, request metrics, and the health, readiness and
// status endpoints. Resource handlers live in the news and stats subpackages.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"news-api/internal/handler/http/respond"
	"news-api/internal/observability/logging"
	"news-api/internal/repository"
	"news-api/internal/usecase/news"
)

const (
	healthTimeout = 5 * time.Second
	readyTimeout  = 2 * time.Second
)

// HealthChecker checks the backing stores.
type HealthChecker interface {
	Health(ctx context.Context) news.Health
}

// StatusReporter builds the operator status overview.
type StatusReporter interface {
	SystemStatus(ctx context.Context) news.SystemStatus
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status     string `json:"status" example:"healthy"`
	Database   string `json:"database" example:"connected"`
	OpenSearch string `json:"opensearch" example:"connected"`
	Timestamp  string `json:"timestamp" example:"2025-01-15T09:30:00Z"`
}

func connection(up bool) string {
	if up {
		return "connected"
	}
	return "disconnected"
}

// HealthHandler reports dependency health. It always answers 200; a failed
// check shows up as "degraded" in the body.
type HealthHandler struct {
	Checker HealthChecker
}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Checks the database and the search engine
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	res := h.Checker.Health(ctx)

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:     res.Status(),
		Database:   connection(res.DatabaseUp),
		OpenSearch: connection(res.EngineUp),
		Timestamp:  res.CheckedAt.Format(time.RFC3339),
	})
}

// ReadyHandler handles Kubernetes readiness checks.
// It checks if the database connection is established and ready to accept traffic.
type ReadyHandler struct {
	DB repository.Pinger
}

// ServeHTTP performs readiness checks and returns 200 OK if ready,
// or 503 Service Unavailable if the database is not ready.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.PingContext(ctx); err != nil {
		slog.Warn("readiness check failed", slog.String("error", logging.SanitizeError(err)))
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Debug("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler handles Kubernetes liveness checks.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Debug("alive: failed to write response", slog.Any("error", err))
	}
}
