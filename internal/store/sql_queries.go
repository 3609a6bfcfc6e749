// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Bolotin

package store

import (
	"fmt"

	"github.com/obolotin/daykeeper/models"
)

// entityTables maps every known entity type to its local table. The four
// record tables share one shape, which is what lets a single repository
// serve all entity types.
var entityTables = map[models.EntityType]string{
	models.EntityTasks:          "tasks",
	models.EntityNotes:          "notes",
	models.EntityCalendarEvents: "calendar_events",
	models.EntityFiles:          "files",
}

// tableForEntity resolves the local table for an entity type. The table name
// always comes from the fixed map above, never from caller input, so it is
// safe to interpolate into SQL text.
func tableForEntity(entityType models.EntityType) (string, error) {
	table, ok := entityTables[entityType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}
	return table, nil
}

const (
	listRecordsQuery = `
		SELECT
			id,
			user_id,
			created_at,
			updated_at,
			deleted,
			payload
		FROM %s
		WHERE user_id = $1;`

	upsertRecordQuery = `
		INSERT INTO %s (
			id,
			user_id,
			created_at,
			updated_at,
			deleted,
			payload
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT(id) DO UPDATE SET
			user_id    = excluded.user_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted,
			payload    = excluded.payload;`

	getWatermarkQuery = `
		SELECT
			user_id,
			entity_type,
			last_sync_at,
			version
		FROM sync_watermarks
		WHERE user_id = $1 AND entity_type = $2;`

	setWatermarkQuery = `
		INSERT INTO sync_watermarks (
			user_id,
			entity_type,
			last_sync_at,
			version
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT(user_id, entity_type) DO UPDATE SET
			last_sync_at = excluded.last_sync_at,
			version      = excluded.version;`
)
