// Package circuitbreaker guards calls to the relational store and the stats
// cache with github.com/sony/gobreaker, so a dead dependency fails fast
// instead of holding every request until its timeout.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"news-api/internal/observability/metrics"
)

// Settings tunes one breaker.
type Settings struct {
	Name string
	// HalfOpenRequests is how many calls may pass while half-open.
	HalfOpenRequests uint32
	// CountWindow clears the closed-state counters.
	CountWindow time.Duration
	// CoolDown is how long the breaker stays open.
	CoolDown time.Duration
	// TripRatio is the failure share that opens the breaker once MinCalls
	// have been seen in the window.
	TripRatio float64
	MinCalls  uint32
}

// DatabaseSettings opens after five straight failures and tries again
// after 30s.
func DatabaseSettings() Settings {
	return Settings{
		Name:             "database",
		HalfOpenRequests: 3,
		CountWindow:      time.Minute,
		CoolDown:         30 * time.Second,
		TripRatio:        1.0,
		MinCalls:         5,
	}
}

// CacheSettings trips early and recovers quickly; a cache miss path always
// exists.
func CacheSettings() Settings {
	return Settings{
		Name:             "stats-cache",
		HalfOpenRequests: 1,
		CountWindow:      30 * time.Second,
		CoolDown:         15 * time.Second,
		TripRatio:        0.5,
		MinCalls:         3,
	}
}

// Breaker is a named gobreaker.CircuitBreaker that logs transitions and
// exports its state as newsapi_circuit_breaker_state.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New builds a closed breaker.
func New(s Settings) *Breaker {
	metrics.SetCircuitBreakerState(s.Name, float64(gobreaker.StateClosed))
	return &Breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.HalfOpenRequests,
		Interval:    s.CountWindow,
		Timeout:     s.CoolDown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			if c.Requests < s.MinCalls {
				return false
			}
			return float64(c.TotalFailures)/float64(c.Requests) >= s.TripRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetCircuitBreakerState(name, float64(to))
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})}
}

// Do runs fn unless the breaker is open, in which case it returns
// gobreaker.ErrOpenState (or ErrTooManyRequests while half-open).
func (b *Breaker) Do(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) { return nil, fn() })
	return err
}

// Call is Do for functions that return a value.
func Call[T any](b *Breaker, fn func() (T, error)) (T, error) {
	res, err := b.cb.Execute(func() (any, error) { return fn() })
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := res.(T)
	return v, nil
}

func (b *Breaker) Name() string { return b.cb.Name() }

func (b *Breaker) State() gobreaker.State { return b.cb.State() }
