package news

import (
	"context"
	"errors"

	"news-api/internal/domain/entity"
	"news-api/internal/infra/search"
)

// Service is the subset of the news use cases these handlers need.
type Service interface {
	List(ctx context.Context, page, limit int) (entity.ArticlePage, error)
	Search(ctx context.Context, keyword string, page, limit int) (entity.ArticlePage, error)
	Get(ctx context.Context, id string) (entity.Article, error)
}

// errorType labels a failure for the pagination error counter.
func errorType(err error) string {
	switch {
	case errors.Is(err, search.ErrBadRequest):
		return "validation"
	case errors.Is(err, search.ErrDecodeFailed):
		return "decode"
	default:
		return "engine"
	}
}
