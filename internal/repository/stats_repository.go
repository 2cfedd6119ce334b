package repository

import (
	"context"

	"news-api/internal/domain/entity"
)

// CrawlStatsRepository reads the crawl_stats table written by the crawler.
type CrawlStatsRepository interface {
	// Today returns the most recently created row for the current date.
	// Returns (nil, nil) when the crawler has not reported today.
	Today(ctx context.Context) (*entity.CrawlStats, error)
	// Recent returns up to n rows ordered by date DESC.
	Recent(ctx context.Context, n int) ([]entity.CrawlStats, error)
	// ListAll returns every row ordered by date DESC.
	ListAll(ctx context.Context) ([]entity.CrawlStats, error)
}

type CategoryRepository interface {
	// ListByArticleCount returns all categories, largest first.
	ListByArticleCount(ctx context.Context) ([]entity.Category, error)
}

// Pinger checks the relational store.
type Pinger interface {
	PingContext(ctx context.Context) error
}
