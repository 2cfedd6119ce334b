package db

import (
	"context"
	"fmt"

	"news-api/internal/infra/adapter/persistence/postgres"
)

// schema creates the tables read by the API when they are missing. The
// crawler owns the data; nothing here alters existing tables.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS crawl_stats (
    id            SERIAL PRIMARY KEY,
    date          DATE NOT NULL,
    total_crawled INTEGER NOT NULL DEFAULT 0,
    success_count INTEGER NOT NULL DEFAULT 0,
    failed_count  INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_crawl_stats_date ON crawl_stats(date DESC)`,
	`CREATE TABLE IF NOT EXISTS categories (
    id            SERIAL PRIMARY KEY,
    name          TEXT NOT NULL UNIQUE,
    article_count INTEGER NOT NULL DEFAULT 0
)`,
}

// EnsureSchema runs the create-if-missing statements in order.
func EnsureSchema(ctx context.Context, q postgres.Querier) error {
	for _, stmt := range schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db: ensure schema: %w", err)
		}
	}
	return nil
}
