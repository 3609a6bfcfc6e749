package store

import (
	"context"

	"github.com/obolotin/daykeeper/models"
)

// RecordRepository is the low-level local store for synchronizable records.
// One implementation serves every entity type; the table is resolved from
// the entity type on each call.
type RecordRepository interface {
	// ListRecords returns the full local collection for one entity type,
	// keyed by record id. Soft-deleted records are included: the merge must
	// see them so a deletion can win a conflict.
	ListRecords(ctx context.Context, userID string, entityType models.EntityType) (map[string]models.SyncRecord, error)

	// UpsertRecords applies create-or-replace by id for every given record.
	// It never deletes rows and is safe to retry with the same batch.
	UpsertRecords(ctx context.Context, userID string, entityType models.EntityType, records ...models.SyncRecord) error
}

// WatermarkRepository persists the per-(user, entity type) sync watermark.
type WatermarkRepository interface {
	// GetWatermark returns the stored watermark, or a synthesized fresh one
	// (nil LastSyncAt, zero version) when no row exists. A missing row is
	// not an error.
	GetWatermark(ctx context.Context, userID string, entityType models.EntityType) (models.SyncWatermark, error)

	// SetWatermark atomically upserts the watermark row keyed by
	// (user_id, entity_type). The row is never partially updated.
	SetWatermark(ctx context.Context, watermark models.SyncWatermark) error
}
