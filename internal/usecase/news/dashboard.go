package news

import (
	"context"
	"fmt"
	"log/slog"

	"news-api/internal/domain/entity"
	"news-api/internal/observability/metrics"
)

// Dashboard returns the aggregated index views. With a cache configured, a
// hit is served directly and a miss is computed and stored. Cache failures
// are logged and never fail the request.
func (s *Service) Dashboard(ctx context.Context) (entity.DashboardStats, error) {
	if s.Cache != nil {
		stats, ok, err := s.Cache.GetDashboard(ctx)
		if err != nil {
			s.logger().Warn("dashboard cache read failed",
				slog.Any("error", err))
		} else if ok {
			return stats, nil
		}
	}

	stats, err := s.computeDashboard(ctx)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	if s.Cache != nil {
		if err := s.Cache.SetDashboard(ctx, stats); err != nil {
			s.logger().Warn("dashboard cache write failed",
				slog.Any("error", err))
		}
	}
	return stats, nil
}

// RefreshDashboard recomputes the dashboard and overwrites the cached copy.
// It is the scheduled cache warm job.
func (s *Service) RefreshDashboard(ctx context.Context) error {
	stats, err := s.computeDashboard(ctx)
	if err != nil {
		return err
	}
	if s.Cache == nil {
		return nil
	}
	if err := s.Cache.SetDashboard(ctx, stats); err != nil {
		return fmt.Errorf("store dashboard: %w", err)
	}
	return nil
}

func (s *Service) computeDashboard(ctx context.Context) (entity.DashboardStats, error) {
	stats, err := s.Articles.GetDashboardStats(ctx)
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	metrics.UpdateArticlesIndexed(stats.TotalArticles)
	return stats, nil
}
