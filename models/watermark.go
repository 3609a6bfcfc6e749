package models

import "time"

// SyncWatermark marks the boundary of already-synchronized remote data for
// one (user, entity type) pair. A fresh pair has no row; the repository
// synthesizes a watermark with a nil LastSyncAt, which the delta fetcher
// interprets as "fetch everything".
type SyncWatermark struct {
	UserID     string     `json:"user_id"`
	EntityType EntityType `json:"entity_type"`

	// LastSyncAt is the timestamp of the last fully successful pipeline run
	// for this pair, or nil before the first one. It advances only when
	// every pipeline step has completed, so a failed run always retries the
	// same window.
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`

	// Version counts successful pipeline runs. It is an opaque,
	// monotonically increasing counter; the engine never branches on it.
	Version int64 `json:"version"`
}
