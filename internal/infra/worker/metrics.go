package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics tracks scheduled job runs.
//
//   - worker_job_runs_total{job,status}: runs by outcome (success/failure)
//   - worker_job_duration_seconds{job}: run duration
//   - worker_job_last_success_timestamp{job}: Unix time of the last successful run
type WorkerMetrics struct {
	JobRunsTotal            *prometheus.CounterVec
	JobDurationSeconds      *prometheus.HistogramVec
	JobLastSuccessTimestamp *prometheus.GaugeVec
}

// NewWorkerMetrics creates the job metrics and registers them with reg.
// A nil reg leaves them unregistered, which is what tests want.
func NewWorkerMetrics(reg prometheus.Registerer) *WorkerMetrics {
	factory := promauto.With(reg)
	return &WorkerMetrics{
		JobRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newsapi",
			Subsystem: "worker",
			Name:      "job_runs_total",
			Help:      "Total number of scheduled job runs by status (success/failure)",
		}, []string{"job", "status"}),

		JobDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "newsapi",
			Subsystem: "worker",
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled job runs in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"job"}),

		JobLastSuccessTimestamp: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "newsapi",
			Subsystem: "worker",
			Name:      "job_last_success_timestamp_seconds",
			Help:      "Unix timestamp of the last successful job run",
		}, []string{"job"}),
	}
}

// RecordJobRun increments the run counter for job with status.
func (m *WorkerMetrics) RecordJobRun(job, status string) {
	m.JobRunsTotal.WithLabelValues(job, status).Inc()
}

// RecordJobDuration observes one run duration in seconds.
func (m *WorkerMetrics) RecordJobDuration(job string, seconds float64) {
	m.JobDurationSeconds.WithLabelValues(job).Observe(seconds)
}

// RecordLastSuccess stamps the current time as the last success of job.
func (m *WorkerMetrics) RecordLastSuccess(job string) {
	m.JobLastSuccessTimestamp.WithLabelValues(job).SetToCurrentTime()
}
