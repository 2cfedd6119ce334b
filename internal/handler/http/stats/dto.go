// Package stats provides the HTTP handlers for crawl statistics, the index
// dashboard and category counts.
package stats

import (
	"news-api/internal/domain/entity"
	"news-api/internal/usecase/news"
)

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	TotalArticles     int64               `json:"total_articles" example:"15230"`
	TotalCrawledToday int32               `json:"total_crawled_today" example:"420"`
	SuccessRate       float64             `json:"success_rate" example:"97.5"`
	RecentStats       []entity.CrawlStats `json:"recent_stats"`
}

func newStatsResponse(s news.Stats) StatsResponse {
	recent := s.RecentStats
	if recent == nil {
		recent = []entity.CrawlStats{}
	}
	return StatsResponse{
		TotalArticles:     s.TotalArticles,
		TotalCrawledToday: s.TotalCrawledToday,
		SuccessRate:       s.SuccessRate,
		RecentStats:       recent,
	}
}

// DailyStatsResponse is the body of GET /api/stats/daily.
type DailyStatsResponse struct {
	Stats     []entity.DailyCrawlStats `json:"stats"`
	TotalDays int                      `json:"total_days" example:"30"`
}

// CategoryListResponse is the body of GET /api/categories.
type CategoryListResponse struct {
	Categories []entity.Category `json:"categories"`
	Total      int               `json:"total" example:"12"`
}

// DashboardResponse is the body of GET /api/stats/dashboard.
type DashboardResponse struct {
	TotalArticles int64               `json:"total_articles" example:"15230"`
	TodayArticles int64               `json:"today_articles" example:"312"`
	Categories    map[string]int64    `json:"categories"`
	Publishers    map[string]int64    `json:"publishers"`
	Daily         []entity.TimeBucket `json:"daily"`
	Hourly        []entity.TimeBucket `json:"hourly"`
}

func newDashboardResponse(d entity.DashboardStats) DashboardResponse {
	out := DashboardResponse{
		TotalArticles: d.TotalArticles,
		TodayArticles: d.TodayArticles,
		Categories:    d.Categories,
		Publishers:    d.Publishers,
		Daily:         d.Daily,
		Hourly:        d.Hourly,
	}
	if out.Categories == nil {
		out.Categories = map[string]int64{}
	}
	if out.Publishers == nil {
		out.Publishers = map[string]int64{}
	}
	if out.Daily == nil {
		out.Daily = []entity.TimeBucket{}
	}
	if out.Hourly == nil {
		out.Hourly = []entity.TimeBucket{}
	}
	return out
}
