package circuitbreaker

import (
	"context"
	"database/sql"
)

// DB puts a Breaker in front of a *sql.DB. It satisfies the repositories'
// Querier and the health checks' pinger.
type DB struct {
	breaker *Breaker
	pool    *sql.DB
}

// NewDB guards pool with DatabaseSettings.
func NewDB(pool *sql.DB) *DB {
	return NewDBWithSettings(pool, DatabaseSettings())
}

func NewDBWithSettings(pool *sql.DB, s Settings) *DB {
	return &DB{breaker: New(s), pool: pool}
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return Call(d.breaker, func() (*sql.Rows, error) {
		return d.pool.QueryContext(ctx, query, args...)
	})
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Call(d.breaker, func() (sql.Result, error) {
		return d.pool.ExecContext(ctx, query, args...)
	})
}

// PingContext counts toward the breaker, so a failing health check helps
// open it and an open breaker answers the check without a round trip.
func (d *DB) PingContext(ctx context.Context) error {
	return d.breaker.Do(func() error { return d.pool.PingContext(ctx) })
}

func (d *DB) Breaker() *Breaker { return d.breaker }
