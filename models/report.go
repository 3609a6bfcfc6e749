package models

import "time"

// SyncStatus is the outcome of one entity-type pipeline within a sync run.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncResult describes the outcome of one entity-type pipeline: its status,
// the failure reason when it failed, and counters for what the run saw.
type SyncResult struct {
	Status SyncStatus `json:"status"`

	// Err carries the pipeline failure. It is nil on success. The caller
	// surfaces it per entity type ("notes failed: ...") rather than as one
	// opaque pass/fail for the whole run.
	Err error `json:"-"`

	// Fetched is the number of raw records returned by the delta fetch.
	Fetched int `json:"fetched"`

	// Skipped is the number of malformed delta records dropped before the
	// merge. Skipped records are logged, never fatal.
	Skipped int `json:"skipped"`

	// Merged is the size of the reconciled collection written through.
	Merged int `json:"merged"`
}

// SyncReport aggregates per-entity-type outcomes of one orchestrator run.
// Every requested entity type has exactly one entry.
type SyncReport struct {
	UserID     string                    `json:"user_id"`
	StartedAt  time.Time                 `json:"started_at"`
	FinishedAt time.Time                 `json:"finished_at"`
	Results    map[EntityType]SyncResult `json:"results"`
}

// Failed reports whether any entity type in the run failed.
func (r SyncReport) Failed() bool {
	for _, res := range r.Results {
		if res.Status == SyncStatusFailed {
			return true
		}
	}
	return false
}
