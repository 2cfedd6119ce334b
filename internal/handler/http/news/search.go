package news

import (
	"log/slog"
	"net/http"
	"time"

	"news-api/internal/common/pagination"
	"news-api/internal/handler/http/respond"
	"news-api/internal/observability/logging"
)

// SearchHandler serves GET /api/news/search.
type SearchHandler struct {
	Svc           Service
	PaginationCfg pagination.Config
}

// ServeHTTP godoc
// @Summary      Search articles
// @Description  Full-text search over title, content and category (title weighted highest), newest first.
// @Tags         news
// @Produce      json
// @Param        q      query    string  true   "Search keyword"
// @Param        page   query    int     false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit  query    int     false  "Articles per page" default(20) minimum(1) maximum(100)
// @Success      200  {object}  ArticleListResponse
// @Failure      400  {object}  respond.ErrorResponse  "Blank keyword or non-integer page/limit"
// @Failure      429  {object}  respond.ErrorResponse  "Rate limit exceeded"
// @Failure      502  {object}  respond.ErrorResponse  "Unreadable engine response"
// @Failure      503  {object}  respond.ErrorResponse  "Search engine unavailable"
// @Router       /api/news/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	keyword := r.URL.Query().Get("q")
	result, err := h.Svc.Search(ctx, keyword, params.Page, params.Limit)
	if err != nil {
		pagination.RecordError(errorType(err))
		respond.WriteError(w, err)
		return
	}

	resp := newArticleListResponse(result)
	pagination.RecordRequest(http.StatusOK, resp.Page)
	logger.Debug("article search served",
		slog.Int("keyword_length", len(keyword)),
		slog.Int("page", resp.Page),
		slog.Int64("total", resp.Total),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, resp)
}
