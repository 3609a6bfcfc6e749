package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/models"
)

type watermarkRepository struct {
	*DB
	logger *logger.Logger
}

func NewWatermarkRepository(db *DB, logger *logger.Logger) WatermarkRepository {
	return &watermarkRepository{
		DB:     db,
		logger: logger,
	}
}

// GetWatermark implements WatermarkRepository. A missing row is not a
// failure: the first sync attempt for a (user, entity type) pair legitimately
// finds no watermark and must fetch the full remote collection, so a fresh
// watermark with nil LastSyncAt is synthesized instead.
func (w *watermarkRepository) GetWatermark(ctx context.Context, userID string, entityType models.EntityType) (models.SyncWatermark, error) {
	log := logger.FromContext(ctx)

	var watermark models.SyncWatermark
	row := w.DB.QueryRowContext(ctx, getWatermarkQuery, userID, entityType.String())

	err := row.Scan(
		&watermark.UserID,
		&watermark.EntityType,
		&watermark.LastSyncAt,
		&watermark.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncWatermark{
			UserID:     userID,
			EntityType: entityType,
			LastSyncAt: nil,
			Version:    0,
		}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.GetWatermark").
			Str("user_id", userID).
			Str("entity_type", entityType.String()).
			Msg("failed to scan sync watermark row")
		return models.SyncWatermark{}, fmt.Errorf("failed to get watermark (%s/%s): %w", userID, entityType, err)
	}

	return watermark, nil
}

func (w *watermarkRepository) SetWatermark(ctx context.Context, watermark models.SyncWatermark) error {
	log := logger.FromContext(ctx)

	result, err := w.DB.ExecContext(ctx, setWatermarkQuery,
		watermark.UserID,
		watermark.EntityType.String(),
		watermark.LastSyncAt,
		watermark.Version,
	)
	if err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.SetWatermark").
			Str("user_id", watermark.UserID).
			Str("entity_type", watermark.EntityType.String()).
			Msg("failed to execute upsert for sync watermark")
		return fmt.Errorf("failed to set watermark (%s/%s): %w", watermark.UserID, watermark.EntityType, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.SetWatermark").
			Str("user_id", watermark.UserID).
			Str("entity_type", watermark.EntityType.String()).
			Msg("failed to get rows affected after watermark upsert")
		return fmt.Errorf("failed to get rows affected for watermark (%s/%s): %w", watermark.UserID, watermark.EntityType, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "watermarkRepository.SetWatermark").
			Str("user_id", watermark.UserID).
			Str("entity_type", watermark.EntityType.String()).
			Msg("no rows affected during watermark upsert")
		return fmt.Errorf("%w (%s/%s)", ErrWatermarkNotSaved, watermark.UserID, watermark.EntityType)
	}

	return nil
}
