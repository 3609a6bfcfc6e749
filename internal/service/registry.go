package service

import (
	"encoding/json"
	"fmt"

	"github.com/obolotin/daykeeper/models"
)

// payloadCheckers maps each entity type to a check that a record's payload
// parses into the expected typed shape. A record whose payload fails its
// check is skipped by the pipeline, never written to either store.
var payloadCheckers = map[models.EntityType]func(payload json.RawMessage) error{
	models.EntityTasks:          payloadChecker[models.TaskPayload],
	models.EntityNotes:          payloadChecker[models.NotePayload],
	models.EntityCalendarEvents: payloadChecker[models.CalendarEventPayload],
	models.EntityFiles:          payloadChecker[models.FilePayload],
}

func payloadChecker[T any](payload json.RawMessage) error {
	if len(payload) == 0 {
		return nil
	}
	var p T
	return json.Unmarshal(payload, &p)
}

// decodeRecord turns one raw delta record into a SyncRecord, verifying the
// envelope fields the engine depends on and the entity-specific payload
// shape. Any failure means the record is malformed and must be skipped.
func decodeRecord(entityType models.EntityType, raw models.RawRecord) (models.SyncRecord, error) {
	check, ok := payloadCheckers[entityType]
	if !ok {
		return models.SyncRecord{}, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}

	var rec models.SyncRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.SyncRecord{}, fmt.Errorf("decode record envelope: %w", err)
	}

	if rec.ID == "" {
		return models.SyncRecord{}, fmt.Errorf("record has no id")
	}
	if rec.UpdatedAt.IsZero() {
		return models.SyncRecord{}, fmt.Errorf("record %s has no updated_at", rec.ID)
	}

	if err := check(rec.Payload); err != nil {
		return models.SyncRecord{}, fmt.Errorf("record %s payload: %w", rec.ID, err)
	}

	return rec, nil
}
