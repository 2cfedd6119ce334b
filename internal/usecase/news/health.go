package news

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Health statuses.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

// Health is the result of probing both backing stores.
type Health struct {
	DatabaseUp bool
	EngineUp   bool
	CheckedAt  time.Time
}

// Status is "healthy" when both checks succeed and "degraded" otherwise.
func (h Health) Status() string {
	if h.DatabaseUp && h.EngineUp {
		return StatusHealthy
	}
	return StatusDegraded
}

// Health checks the database and the search engine concurrently. It never
// fails; an unreachable dependency is reported as down.
func (s *Service) Health(ctx context.Context) Health {
	var dbUp, engineUp bool

	var g errgroup.Group
	g.Go(func() error {
		dbUp = s.DB != nil && s.DB.PingContext(ctx) == nil
		return nil
	})
	g.Go(func() error {
		engineUp = s.Articles.Ping(ctx)
		return nil
	})
	_ = g.Wait()

	now := time.Now().UTC()
	s.uptime.observe("database", dbUp, now)
	s.uptime.observe("opensearch", engineUp, now)

	return Health{DatabaseUp: dbUp, EngineUp: engineUp, CheckedAt: now}
}

// upTracker remembers since when each dependency has been continuously up.
type upTracker struct {
	mu    sync.Mutex
	since map[string]time.Time
}

func (t *upTracker) observe(name string, up bool, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.since == nil {
		t.since = make(map[string]time.Time)
	}
	if !up {
		delete(t.since, name)
		return
	}
	if _, ok := t.since[name]; !ok {
		t.since[name] = now
	}
}

// uptime returns how long name has been up as of now, or 0 when it is down
// or has never been observed.
func (t *upTracker) uptime(name string, now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	since, ok := t.since[name]
	if !ok {
		return 0
	}
	return now.Sub(since)
}
