package repository

import (
	"context"

	"news-api/internal/domain/entity"
)

// ArticleSearcher is the read side of the article index.
// Errors match the search package vocabulary (ErrBadRequest, ErrNotFound,
// ErrEngineUnavailable, ErrDecodeFailed).
type ArticleSearcher interface {
	// ListArticles returns one page of all articles ordered by published_at DESC.
	// page and limit are clamped, never rejected.
	ListArticles(ctx context.Context, page, limit int) (entity.ArticlePage, error)
	// SearchArticles runs a keyword search. A blank keyword is a bad request.
	SearchArticles(ctx context.Context, keyword string, page, limit int) (entity.ArticlePage, error)
	GetArticleByID(ctx context.Context, id string) (entity.Article, error)
	GetDashboardStats(ctx context.Context) (entity.DashboardStats, error)
	// Ping reports engine reachability; it never fails.
	Ping(ctx context.Context) bool
}
