// Package postgres implements the relational repositories on database/sql.
// Queries go through a circuit breaker in production and a bare *sql.DB in
// tests; both satisfy Querier.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"news-api/internal/observability/metrics"
)

// Querier is the subset of *sql.DB used by the repositories.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}
