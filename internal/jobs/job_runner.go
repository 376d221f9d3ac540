package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/config"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/repository/postgres"
)

// JobRunner coordinates all scheduled maintenance jobs.
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	config *config.Config
}

func NewJobRunner(db *sql.DB, store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad run
// never takes the cron process down.
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

// PurgeExpiredResetTokens deletes password reset tokens that have expired
// or were already used. Activity logs are never purged; the audit trail is
// append-only.
func (jr *JobRunner) PurgeExpiredResetTokens() {
	jr.runWithRecovery("PurgeExpiredResetTokens", func() {
		ctx := context.Background()

		deleted, err := jr.store.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to purge reset tokens", "error", err)
			return
		}
		logger.Info("Purged reset tokens", "count", deleted)
	})
}

// RunAllJobs runs every job once (for manual execution).
func (jr *JobRunner) RunAllJobs() {
	jr.PurgeExpiredResetTokens()
}
