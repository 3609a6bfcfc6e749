package store

import (
	"database/sql"

	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
