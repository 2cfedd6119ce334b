package news

import (
	"net/http"

	"news-api/internal/common/pagination"
)

// Register mounts the article routes on mux. searchLimit, when non-nil,
// wraps the search route only.
func Register(mux *http.ServeMux, svc Service, paginationCfg pagination.Config, searchLimit func(http.Handler) http.Handler) {
	var search http.Handler = SearchHandler{Svc: svc, PaginationCfg: paginationCfg}
	if searchLimit != nil {
		search = searchLimit(search)
	}

	mux.Handle("GET /api/news", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET /api/news/search", search)
	mux.Handle("GET /api/news/{id}", GetHandler{Svc: svc})
}
