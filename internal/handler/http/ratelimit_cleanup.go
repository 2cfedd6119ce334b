package http

import (
	"context"
	"log/slog"
	"time"

	"news-api/internal/handler/http/middleware"
	"news-api/pkg/config"
)

// DefaultCleanupInterval is the default cleanup interval if not specified.
const DefaultCleanupInterval = 5 * time.Minute

// DefaultClientIdle is how long a client may stay silent before its limiter is dropped.
const DefaultClientIdle = 10 * time.Minute

// CleanupConfig holds configuration for rate limit cleanup.
type CleanupConfig struct {
	Interval    time.Duration
	MaxIdle     time.Duration
	LimiterType string
}

// LoadCleanupConfigFromEnv loads cleanup configuration from environment variables.
//
// Environment variables:
//   - RATELIMIT_CLEANUP_INTERVAL: Cleanup interval (default 5m)
//   - RATELIMIT_CLIENT_IDLE: Idle time before a client is forgotten (default 10m)
//
// Invalid values fall back to the defaults.
func LoadCleanupConfigFromEnv(limiterType string) CleanupConfig {
	return CleanupConfig{
		Interval:    config.GetEnvDuration("RATELIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval),
		MaxIdle:     config.GetEnvDuration("RATELIMIT_CLIENT_IDLE", DefaultClientIdle),
		LimiterType: limiterType,
	}
}

// StartRateLimitCleanup periodically drops idle clients from limiter until
// ctx is cancelled. It blocks; run it in its own goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter *middleware.RateLimiter, cfg CleanupConfig) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultCleanupInterval
	}
	if cfg.MaxIdle <= 0 {
		cfg.MaxIdle = DefaultClientIdle
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.String("limiter_type", cfg.LimiterType),
		slog.Duration("interval", cfg.Interval),
		slog.Duration("max_idle", cfg.MaxIdle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped",
				slog.String("limiter_type", cfg.LimiterType))
			return
		case <-ticker.C:
			removed := limiter.Cleanup(cfg.MaxIdle)
			slog.Debug("rate limit cleanup completed",
				slog.String("limiter_type", cfg.LimiterType),
				slog.Int("clients_removed", removed),
				slog.Int("active_clients", limiter.ActiveClients()))
		}
	}
}
