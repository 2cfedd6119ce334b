package news

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"news-api/internal/domain/entity"
)

// recentDays is how many crawl_stats rows the summary includes.
const recentDays = 7

// Stats is the crawl summary.
type Stats struct {
	TotalArticles     int64
	TotalCrawledToday int32
	SuccessRate       float64
	RecentStats       []entity.CrawlStats
}

// Stats combines the indexed article total with today's crawl counters and
// the last week of crawl rows. The three lookups run concurrently; any
// failure fails the whole summary.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var (
		total  int64
		today  *entity.CrawlStats
		recent []entity.CrawlStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.Articles.ListArticles(gctx, 1, 1)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		total = page.Total
		return nil
	})
	g.Go(func() error {
		row, err := s.CrawlStatsRepo.Today(gctx)
		if err != nil {
			return fmt.Errorf("today crawl stats: %w", err)
		}
		today = row
		return nil
	})
	g.Go(func() error {
		rows, err := s.CrawlStatsRepo.Recent(gctx, recentDays)
		if err != nil {
			return fmt.Errorf("recent crawl stats: %w", err)
		}
		recent = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	out := Stats{TotalArticles: total, RecentStats: recent}
	if out.RecentStats == nil {
		out.RecentStats = []entity.CrawlStats{}
	}
	if today != nil {
		out.TotalCrawledToday = today.TotalCrawled
		out.SuccessRate = today.SuccessRate()
	}
	return out, nil
}

// DailyStats returns every crawl_stats row as a per-day view, newest first.
func (s *Service) DailyStats(ctx context.Context) ([]entity.DailyCrawlStats, error) {
	rows, err := s.CrawlStatsRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list crawl stats: %w", err)
	}
	out := make([]entity.DailyCrawlStats, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Daily())
	}
	return out, nil
}

// Categories returns all categories ordered by article count.
func (s *Service) Categories(ctx context.Context) ([]entity.Category, error) {
	cats, err := s.CategoryRepo.ListByArticleCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []entity.Category{}
	}
	return cats, nil
}
