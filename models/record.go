package models

import (
	"encoding/json"
	"time"
)

// SyncRecord is the engine-facing shape shared by every synchronizable
// entity. Record identity is always ID; content equality is never used to
// match records between the local and remote stores.
type SyncRecord struct {
	// ID is a globally unique identifier assigned at creation and never
	// reassigned, regardless of which device created the record.
	ID string `json:"id"`

	// UserID is the opaque account identifier produced by the identity
	// collaborator. The engine never interprets it.
	UserID string `json:"user_id"`

	// CreatedAt is the creation timestamp. It plays no role in conflict
	// resolution; UpdatedAt is the only recency signal.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every local or remote mutation and is
	// monotonically non-decreasing. The merge resolver compares it with
	// strict "after" semantics for all entity types.
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted marks a soft-deleted record. Deletion is modelled as a
	// mutation (Deleted=true plus an UpdatedAt bump) so last-writer-wins
	// propagates it like any other edit; records are never physically
	// removed by the sync pass.
	Deleted bool `json:"deleted"`

	// Payload holds the type-specific fields. The merge treats it as an
	// opaque blob; only the surrounding application decodes it.
	Payload json.RawMessage `json:"payload"`
}

// RawRecord is a single undecoded record as returned by the remote delta
// endpoint. Decoding happens per entity type in the service layer so that a
// malformed record can be skipped without aborting the pipeline.
//
// An alias, not a defined type: it must keep json.RawMessage's marshalling so
// a delta body carries records as plain JSON objects, not base64 strings.
type RawRecord = json.RawMessage

// ReconciledCollection is the output of one merge pass: the authoritative
// id-to-record mapping to be written through to both stores. It is transient;
// only its constituent records persist.
type ReconciledCollection map[string]SyncRecord

// Records returns the collection's records as a slice, for batch upserts.
// Order is unspecified.
func (c ReconciledCollection) Records() []SyncRecord {
	records := make([]SyncRecord, 0, len(c))
	for _, r := range c {
		records = append(records, r)
	}
	return records
}
