package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

type CrawlStatsRepo struct{ db Querier }

func NewCrawlStatsRepo(db Querier) repository.CrawlStatsRepository {
	return &CrawlStatsRepo{db: db}
}

const crawlStatsColumns = `id, date, total_crawled, success_count, failed_count, created_at`

func scanCrawlStats(rows *sql.Rows) (entity.CrawlStats, error) {
	var (
		s   entity.CrawlStats
		day time.Time
	)
	if err := rows.Scan(&s.ID, &day, &s.TotalCrawled, &s.SuccessCount, &s.FailedCount, &s.CreatedAt); err != nil {
		return entity.CrawlStats{}, err
	}
	s.Date = entity.NewDate(day)
	return s, nil
}

func (repo *CrawlStatsRepo) Today(ctx context.Context) (*entity.CrawlStats, error) {
	const query = `
SELECT ` + crawlStatsColumns + `
FROM crawl_stats
WHERE date = CURRENT_DATE
ORDER BY created_at DESC
LIMIT 1`
	defer observe("select_crawl_stats_today", time.Now())

	list, err := repo.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Today: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (repo *CrawlStatsRepo) Recent(ctx context.Context, n int) ([]entity.CrawlStats, error) {
	const query = `
SELECT ` + crawlStatsColumns + `
FROM crawl_stats
ORDER BY date DESC
LIMIT $1`
	if n <= 0 {
		return []entity.CrawlStats{}, nil
	}
	defer observe("select_crawl_stats_recent", time.Now())

	list, err := repo.list(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("Recent: %w", err)
	}
	return list, nil
}

func (repo *CrawlStatsRepo) ListAll(ctx context.Context) ([]entity.CrawlStats, error) {
	const query = `
SELECT ` + crawlStatsColumns + `
FROM crawl_stats
ORDER BY date DESC`
	defer observe("select_crawl_stats_all", time.Now())

	list, err := repo.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return list, nil
}

func (repo *CrawlStatsRepo) list(ctx context.Context, query string, args ...any) ([]entity.CrawlStats, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	stats := make([]entity.CrawlStats, 0, 32)
	for rows.Next() {
		s, err := scanCrawlStats(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
