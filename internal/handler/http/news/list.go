package news

import (
	"log/slog"
	"net/http"
	"time"

	"news-api/internal/common/pagination"
	"news-api/internal/handler/http/respond"
	"news-api/internal/observability/logging"
)

// ListHandler serves GET /api/news.
type ListHandler struct {
	Svc           Service
	PaginationCfg pagination.Config
}

// ServeHTTP godoc
// @Summary      List articles
// @Description  Returns one page of articles, newest first. Out-of-range page and limit values are clamped.
// @Tags         news
// @Produce      json
// @Param        page   query    int  false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "Articles per page" default(20) minimum(1) maximum(100)
// @Success      200  {object}  ArticleListResponse
// @Failure      400  {object}  respond.ErrorResponse  "Non-integer page or limit"
// @Failure      502  {object}  respond.ErrorResponse  "Unreadable engine response"
// @Failure      503  {object}  respond.ErrorResponse  "Search engine unavailable"
// @Router       /api/news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.Svc.List(ctx, params.Page, params.Limit)
	if err != nil {
		pagination.RecordError(errorType(err))
		respond.WriteError(w, err)
		return
	}

	resp := newArticleListResponse(result)
	pagination.RecordRequest(http.StatusOK, resp.Page)
	logger.Debug("article list served",
		slog.Int("page", resp.Page),
		slog.Int("limit", resp.Limit),
		slog.Int("returned_count", len(resp.Articles)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, resp)
}
