package workers

import (
	"context"
	"time"

	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/internal/service"
)

// SyncWorker runs the periodic background sync for the signed-in user by
// driving the service layer's sync job.
type SyncWorker struct {
	job      service.ClientSyncJob
	userID   string
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(job service.ClientSyncJob, userID string, interval time.Duration, log *logger.Logger) *SyncWorker {
	return &SyncWorker{
		job:      job,
		userID:   userID,
		interval: interval,
		logger:   log,
	}
}

// Run implements Worker. It starts the ticker-driven sync job and returns
// immediately.
func (w *SyncWorker) Run(ctx context.Context) {
	w.logger.Info().
		Str("user_id", w.userID).
		Dur("interval", w.interval).
		Msg("starting background sync worker")

	w.job.Start(ctx, w.userID, w.interval)
}

// Shutdown implements Worker. It blocks until the sync goroutine has exited.
func (w *SyncWorker) Shutdown() {
	w.job.Stop()
	w.logger.Info().Str("user_id", w.userID).Msg("background sync worker stopped")
}
