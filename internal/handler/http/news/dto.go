// Package news provides the HTTP handlers for browsing, searching and
// fetching articles from the search index.
package news

import (
	"news-api/internal/common/pagination"
	"news-api/internal/domain/entity"
)

// ArticleListResponse is the body of the list and search endpoints.
type ArticleListResponse struct {
	Articles   []entity.Article `json:"articles"`
	Total      int64            `json:"total" example:"45"`
	Page       int              `json:"page" example:"1"`
	Limit      int              `json:"limit" example:"20"`
	TotalPages int              `json:"total_pages" example:"3"`
}

func newArticleListResponse(p entity.ArticlePage) ArticleListResponse {
	meta := pagination.NewMetadata(pagination.Window{Page: p.Page, Limit: p.Limit}, p.Total)
	articles := p.Articles
	if articles == nil {
		articles = []entity.Article{}
	}
	return ArticleListResponse{
		Articles:   articles,
		Total:      meta.Total,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	}
}
