// Package cache stores computed dashboard statistics in Redis so repeated
// dashboard requests do not each run the aggregation query.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"news-api/internal/domain/entity"
	"news-api/internal/observability/metrics"
	"news-api/internal/resilience/circuitbreaker"
)

const dashboardKey = "news-api:stats:dashboard"

// StatsCache is a Redis-backed cache of entity.DashboardStats.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	cb     *circuitbreaker.Breaker
}

// NewRedisStatsCache connects to the Redis server at redisURL
// (redis://[:password@]host:port/db) and verifies it with a PING.
func NewRedisStatsCache(ctx context.Context, redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return NewStatsCache(client, ttl), nil
}

// NewStatsCache wraps an existing client.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
		cb:     circuitbreaker.New(circuitbreaker.CacheSettings()),
	}
}

// GetDashboard returns the cached stats. ok is false on a miss.
func (c *StatsCache) GetDashboard(ctx context.Context) (entity.DashboardStats, bool, error) {
	b, err := circuitbreaker.Call(c.cb, func() ([]byte, error) {
		b, err := c.client.Get(ctx, dashboardKey).Bytes()
		if errors.Is(err, redis.Nil) {
			// a miss is not a cache failure
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		metrics.RecordStatsCache("error")
		return entity.DashboardStats{}, false, fmt.Errorf("cache: get dashboard: %w", err)
	}

	if b == nil {
		metrics.RecordStatsCache("miss")
		return entity.DashboardStats{}, false, nil
	}

	var stats entity.DashboardStats
	if err := json.Unmarshal(b, &stats); err != nil {
		metrics.RecordStatsCache("error")
		return entity.DashboardStats{}, false, fmt.Errorf("cache: decode dashboard: %w", err)
	}
	metrics.RecordStatsCache("hit")
	return stats, true, nil
}

// SetDashboard stores stats for the configured TTL.
func (c *StatsCache) SetDashboard(ctx context.Context, stats entity.DashboardStats) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("cache: encode dashboard: %w", err)
	}
	err = c.cb.Do(func() error {
		return c.client.Set(ctx, dashboardKey, b, c.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("cache: set dashboard: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *StatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client.
func (c *StatsCache) Close() error {
	return c.client.Close()
}
