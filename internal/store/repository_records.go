package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) ListRecords(ctx context.Context, userID string, entityType models.EntityType) (map[string]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	table, err := tableForEntity(entityType)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, fmt.Sprintf(listRecordsQuery, table), userID)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Str("user_id", userID).
			Str("entity_type", entityType.String()).
			Msg("failed to execute query for listing local records")
		return nil, fmt.Errorf("failed to query local %s collection: %w", entityType, err)
	}
	defer rows.Close()

	records := make(map[string]models.SyncRecord)

	for rows.Next() {
		var record models.SyncRecord
		var payload []byte

		scanErr := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.CreatedAt,
			&record.UpdatedAt,
			&record.Deleted,
			&payload,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.ListRecords").
				Str("user_id", userID).
				Str("entity_type", entityType.String()).
				Msg("failed to scan local record row")
			return nil, fmt.Errorf("failed to scan local %s row: %w", entityType, scanErr)
		}

		record.Payload = json.RawMessage(payload)
		records[record.ID] = record
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.ListRecords").
			Str("user_id", userID).
			Str("entity_type", entityType.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating local %s rows: %w", entityType, rowsErr)
	}

	return records, nil
}

func (l *localRecordRepository) UpsertRecords(ctx context.Context, userID string, entityType models.EntityType, records ...models.SyncRecord) error {
	log := logger.FromContext(ctx)

	table, err := tableForEntity(entityType)
	if err != nil {
		return err
	}

	for _, record := range records {
		res, err := l.DB.ExecContext(ctx, fmt.Sprintf(upsertRecordQuery, table),
			record.ID,
			userID,
			record.CreatedAt,
			record.UpdatedAt,
			record.Deleted,
			[]byte(record.Payload),
		)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.UpsertRecords").
				Str("user_id", userID).
				Str("entity_type", entityType.String()).
				Str("record_id", record.ID).
				Msg("failed to execute upsert for sync record")
			return fmt.Errorf("failed to upsert %s record (id=%s): %w", entityType, record.ID, err)
		}

		if affected, raErr := res.RowsAffected(); raErr == nil && affected == 0 {
			log.Error().
				Str("func", "recordRepository.UpsertRecords").
				Str("user_id", userID).
				Str("entity_type", entityType.String()).
				Str("record_id", record.ID).
				Msg("upsert affected no rows")
			return fmt.Errorf("%w (%s/%s)", ErrRecordsNotSaved, entityType, record.ID)
		}
	}

	return nil
}
