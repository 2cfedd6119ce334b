package stats

import "net/http"

// Register mounts the statistics and category routes on mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /api/stats", SummaryHandler{Svc: svc})
	mux.Handle("GET /api/stats/daily", DailyHandler{Svc: svc})
	mux.Handle("GET /api/stats/dashboard", DashboardHandler{Svc: svc})
	mux.Handle("GET /api/categories", CategoriesHandler{Svc: svc})
}
