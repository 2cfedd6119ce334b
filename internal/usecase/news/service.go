// Package news implements the read-only news use cases: article listing and
// search delegated to the search engine, crawl statistics and categories from
// the relational store, and health reporting over both.
package news

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

// DashboardCache stores precomputed dashboard statistics.
// GetDashboard reports ok=false on a miss.
type DashboardCache interface {
	GetDashboard(ctx context.Context) (stats entity.DashboardStats, ok bool, err error)
	SetDashboard(ctx context.Context, stats entity.DashboardStats) error
}

// Service provides the news use cases.
// Cache is optional; Logger defaults to slog.Default().
type Service struct {
	Articles       repository.ArticleSearcher
	CrawlStatsRepo repository.CrawlStatsRepository
	CategoryRepo   repository.CategoryRepository
	DB             repository.Pinger
	Cache          DashboardCache
	Logger         *slog.Logger

	// StartedAt is the process start used for uptime reporting.
	StartedAt time.Time

	uptime upTracker
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// List returns one page of all articles, newest first.
func (s *Service) List(ctx context.Context, page, limit int) (entity.ArticlePage, error) {
	result, err := s.Articles.ListArticles(ctx, page, limit)
	if err != nil {
		return entity.ArticlePage{}, fmt.Errorf("list articles: %w", err)
	}
	return result, nil
}

// Search returns one page of articles matching keyword.
func (s *Service) Search(ctx context.Context, keyword string, page, limit int) (entity.ArticlePage, error) {
	result, err := s.Articles.SearchArticles(ctx, keyword, page, limit)
	if err != nil {
		return entity.ArticlePage{}, fmt.Errorf("search articles: %w", err)
	}
	return result, nil
}

// Get returns a single article by its document id.
func (s *Service) Get(ctx context.Context, id string) (entity.Article, error) {
	article, err := s.Articles.GetArticleByID(ctx, id)
	if err != nil {
		return entity.Article{}, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}
