package stats

import (
	"context"
	"net/http"

	"news-api/internal/domain/entity"
	"news-api/internal/handler/http/respond"
	"news-api/internal/usecase/news"
)

// Service is the subset of the news use cases these handlers need.
type Service interface {
	Stats(ctx context.Context) (news.Stats, error)
	DailyStats(ctx context.Context) ([]entity.DailyCrawlStats, error)
	Dashboard(ctx context.Context) (entity.DashboardStats, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

// SummaryHandler serves GET /api/stats.
type SummaryHandler struct{ Svc Service }

// ServeHTTP godoc
// @Summary      Crawl summary
// @Description  Indexed article total, today's crawl counters and success rate, and the last 7 days of crawl rows.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  respond.ErrorResponse
// @Failure      503  {object}  respond.ErrorResponse
// @Router       /api/stats [get]
func (h SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, newStatsResponse(s))
}

// DailyHandler serves GET /api/stats/daily.
type DailyHandler struct{ Svc Service }

// ServeHTTP godoc
// @Summary      Daily crawl statistics
// @Description  Every recorded crawl day, newest first.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  DailyStatsResponse
// @Failure      500  {object}  respond.ErrorResponse
// @Failure      503  {object}  respond.ErrorResponse
// @Router       /api/stats/daily [get]
func (h DailyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.DailyStats(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	if rows == nil {
		rows = []entity.DailyCrawlStats{}
	}
	respond.JSON(w, http.StatusOK, DailyStatsResponse{Stats: rows, TotalDays: len(rows)})
}

// DashboardHandler serves GET /api/stats/dashboard.
type DashboardHandler struct{ Svc Service }

// ServeHTTP godoc
// @Summary      Index dashboard
// @Description  Totals, per-category and per-publisher counts, and daily (last 30 days) and hourly (last 24 hours) histograms.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  DashboardResponse
// @Failure      502  {object}  respond.ErrorResponse
// @Failure      503  {object}  respond.ErrorResponse
// @Router       /api/stats/dashboard [get]
func (h DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, newDashboardResponse(d))
}

// CategoriesHandler serves GET /api/categories.
type CategoriesHandler struct{ Svc Service }

// ServeHTTP godoc
// @Summary      Categories
// @Description  All categories ordered by article count, largest first.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  CategoryListResponse
// @Failure      500  {object}  respond.ErrorResponse
// @Failure      503  {object}  respond.ErrorResponse
// @Router       /api/categories [get]
func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Svc.Categories(r.Context())
	if err != nil {
		respond.WriteError(w, err)
		return
	}
	if cats == nil {
		cats = []entity.Category{}
	}
	respond.JSON(w, http.StatusOK, CategoryListResponse{Categories: cats, Total: len(cats)})
}
