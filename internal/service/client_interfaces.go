package service

import (
	"context"
	"time"

	"github.com/obolotin/daykeeper/models"
)

// MergeService defines the contract for the pure conflict resolver at the
// heart of the engine. It has no dependencies and no side effects: given the
// same inputs it always produces the same reconciled collection.
type MergeService interface {
	// Reconcile merges the local collection with decoded remote records into
	// the authoritative per-id mapping. The result is the union of both
	// sides: for ids present in both, the record with the strictly later
	// UpdatedAt wins, and on an exact timestamp tie the local record is
	// retained. No input record is ever dropped, only superseded.
	//
	// ctx cancellation is checked per iteration so callers can abort early
	// on large collections.
	Reconcile(ctx context.Context, local map[string]models.SyncRecord, remote []models.SyncRecord) (models.ReconciledCollection, error)
}

// ClientSyncService defines the client-side contract for synchronising the
// local store with the remote store.
type ClientSyncService interface {
	// SyncAll runs one sync pass for the given user over the requested
	// entity types; no arguments means every known type. Entity-type
	// pipelines run concurrently and fail independently: one failed type
	// never blocks or rolls back the others. The returned report has
	// exactly one result per requested entity type.
	//
	// At most one run per user may be active; a second concurrent call for
	// the same user fails immediately with ErrSyncInProgress. Runs for
	// different users proceed independently.
	SyncAll(ctx context.Context, userID string, entityTypes ...models.EntityType) (models.SyncReport, error)

	// SyncEntity runs the pipeline for a single entity type, under the same
	// per-user exclusion as SyncAll.
	SyncEntity(ctx context.Context, userID string, entityType models.EntityType) (models.SyncResult, error)
}

// FileTransferService moves binary file payloads between the device and
// object storage. It deals only in payload bytes and file metadata; record
// synchronisation stays in ClientSyncService.
type FileTransferService interface {
	// CreateFileRecord mints a fresh record id, uploads content under its
	// content-addressed key, and returns a ready-to-upsert record carrying
	// the file metadata payload.
	CreateFileRecord(ctx context.Context, userID, name, contentType string, content []byte) (models.SyncRecord, error)

	// UploadPayload uploads content to object storage under a
	// content-addressed key and returns the file metadata to embed in the
	// owning record's payload. Uploading identical content twice lands on
	// the same key and is harmless.
	UploadPayload(ctx context.Context, userID, fileID, name, contentType string, content []byte) (models.FilePayload, error)

	// DownloadURL issues a time-limited download URL for an uploaded
	// payload. A zero or negative ttl falls back to one hour. Returns an
	// error if the payload was never uploaded.
	DownloadURL(ctx context.Context, payload models.FilePayload, ttl time.Duration) (models.SignedURL, error)

	// DeletePayload removes the stored payload bytes. Called when a
	// soft-deleted file record is purged by the surrounding application;
	// the sync pass itself never triggers it.
	DeletePayload(ctx context.Context, payload models.FilePayload) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls SyncAll for the signed-in user.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
