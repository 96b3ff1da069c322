package jobs

import (
	"context"
	"time"

	"sric-access-backend/internal/config"
	"sric-access-backend/internal/ingest"
	"sric-access-backend/internal/logger"
)

// pollTimeout bounds one mailbox polling cycle so an overlapping cron
// tick never piles up behind a hung fetch.
const pollTimeout = 25 * time.Second

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	poller *ingest.GmailPoller
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(poller *ingest.GmailPoller, cfg *config.Config) *JobRunner {
	return &JobRunner{
		poller: poller,
		config: cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// PollMailbox fetches unread guest-request emails and runs them
// through the processing pipeline.
func (jr *JobRunner) PollMailbox() {
	jr.runWithRecovery("poll_mailbox", func() {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()

		if err := jr.poller.Poll(ctx); err != nil {
			logger.Error("Mailbox poll failed", "error", err)
		}
	})
}
