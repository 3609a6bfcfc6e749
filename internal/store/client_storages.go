package store

import (
	"context"
	"fmt"

	"github.com/obolotin/daykeeper/internal/config"
	"github.com/obolotin/daykeeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Records is the SQLite-backed repository for synchronizable records
	// of every entity type.
	Records RecordRepository

	// Watermarks is the repository for per-(user, entity type) sync
	// watermarks, stored alongside the record tables.
	Watermarks WatermarkRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     record and watermark repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Records:    NewLocalRecordRepository(db, logger),
		Watermarks: NewWatermarkRepository(db, logger),
	}, nil
}
