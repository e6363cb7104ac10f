// Package cron runs scheduled notifications. The Scheduler executes Jobs on
// 5-field cron expressions; the schedule.cron module turns configured jobs
// into Block Kit messages sent through the channel dispatcher.
package cron

import "context"

// Job defines a periodic task.
type Job interface {
	// Name returns a unique identifier for this job (used for logging and dedup).
	Name() string

	// Schedule returns a 5-field cron expression (e.g., "*/5 * * * *").
	Schedule() string

	// Run executes the job. Implementations should check ctx.Done() for
	// graceful cancellation.
	Run(ctx context.Context) error
}
