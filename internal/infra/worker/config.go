package worker

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	envcfg "news-api/pkg/config"
)

// Config controls a scheduled background job.
type Config struct {
	// Schedule is a standard 5-field cron expression or a descriptor such as
	// "@every 5m".
	Schedule string

	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string

	// JobTimeout bounds a single run.
	JobTimeout time.Duration

	// RunOnStart runs the job once as soon as the scheduler starts.
	RunOnStart bool
}

// DefaultConfig refreshes every five minutes in UTC.
func DefaultConfig() Config {
	return Config{
		Schedule:   "*/5 * * * *",
		Timezone:   "UTC",
		JobTimeout: 30 * time.Second,
		RunOnStart: true,
	}
}

// Validate checks every field and reports all problems together.
func (c Config) Validate() error {
	var errs []error

	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("schedule %q: %w", c.Schedule, err))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, err))
	}
	if err := envcfg.ValidatePositiveDuration(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %w", errors.Join(errs...))
	}
	return nil
}
