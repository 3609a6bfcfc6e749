package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/obolotin/daykeeper/internal/config"
	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/internal/service"
	"github.com/obolotin/daykeeper/internal/workers"
)

var ErrNoUser = errors.New("no signed-in user configured")

// App ties the client services and background workers to one process
// lifecycle: an initial full sync on startup, then periodic syncs until the
// process is told to stop.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	userID   string
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if cfg.App.UserID == "" {
		return nil, ErrNoUser
	}

	syncWorker := workers.NewSyncWorker(services.SyncJob, cfg.App.UserID, cfg.Workers.SyncInterval, log)

	return &App{
		services: services,
		workers:  workers.New(syncWorker),
		userID:   cfg.App.UserID,
		logger:   log,
	}, nil
}

// Run implements Client. The startup sync is best-effort: a failed entity
// type is reported and retried on the next background tick, it never stops
// the application.
func (a *App) Run(ctx context.Context) error {
	report, err := a.services.SyncService.SyncAll(ctx, a.userID)
	if err != nil {
		return fmt.Errorf("startup sync: %w", err)
	}
	for entityType, result := range report.Results {
		if result.Err != nil {
			a.logger.Warn().
				Err(result.Err).
				Str("entity_type", entityType.String()).
				Msg("startup sync incomplete for entity type")
		}
	}

	a.workers.Run(ctx)
	defer a.workers.Shutdown()

	<-ctx.Done()
	a.logger.Info().Msg("shutting down client")

	return nil
}
