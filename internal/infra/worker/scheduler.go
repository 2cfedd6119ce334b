// Package worker runs periodic background jobs of the API process, such as
// warming the dashboard stats cache.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"news-api/internal/observability/logging"
)

// JobFunc is one unit of scheduled work.
type JobFunc func(ctx context.Context) error

// Scheduler runs a single named job on a cron schedule.
type Scheduler struct {
	name    string
	job     JobFunc
	cfg     Config
	logger  *slog.Logger
	metrics *WorkerMetrics
	cron    *cron.Cron
}

// NewScheduler validates cfg and registers job under name.
func NewScheduler(name string, job JobFunc, cfg Config, logger *slog.Logger, metrics *WorkerMetrics) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	s := &Scheduler{
		name:    name,
		job:     job,
		cfg:     cfg,
		logger:  logger.With(slog.String("job", name)),
		metrics: metrics,
		cron:    cron.New(cron.WithLocation(loc)),
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("add cron job: %w", err)
	}
	return s, nil
}

// Start begins scheduling. It does not block.
func (s *Scheduler) Start() {
	s.cron.Start()
	if s.cfg.RunOnStart {
		go s.RunOnce(context.Background())
	}
	s.logger.Info("scheduler started",
		slog.String("schedule", s.cfg.Schedule),
		slog.String("timezone", s.cfg.Timezone))
}

// Stop prevents new runs and waits for a running job until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce executes the job with the configured timeout and records the outcome.
func (s *Scheduler) RunOnce(parent context.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, s.cfg.JobTimeout)
	defer cancel()

	err := s.job(ctx)
	elapsed := time.Since(start)
	s.metrics.RecordJobDuration(s.name, elapsed.Seconds())

	if err != nil {
		s.metrics.RecordJobRun(s.name, "failure")
		s.logger.Warn("job failed",
			slog.String("error", logging.SanitizeError(err)),
			slog.Duration("duration", elapsed))
		return
	}
	s.metrics.RecordJobRun(s.name, "success")
	s.metrics.RecordLastSuccess(s.name)
	s.logger.Debug("job completed", slog.Duration("duration", elapsed))
}
