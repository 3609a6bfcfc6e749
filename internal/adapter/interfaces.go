package adapter

import (
	"context"
	"time"

	"github.com/obolotin/daykeeper/models"
)

// RemoteStore is the client-side view of the remote synchronization API.
// The bearer token is injected by the external identity collaborator via
// SetToken and is opaque to the engine.
type RemoteStore interface {
	// SetToken stores the session token attached to every subsequent
	// request. Safe for concurrent use.
	SetToken(token string)

	// FetchDelta returns the remote records of one entity type whose
	// update timestamp is strictly after since. A nil since requests the
	// full collection. Result ordering is unspecified; records are
	// returned undecoded so one malformed record cannot fail the fetch.
	FetchDelta(ctx context.Context, userID string, entityType models.EntityType, since *time.Time) ([]models.RawRecord, error)

	// UpsertRecords commits records to the remote store, create-or-replace
	// by id. The endpoint is idempotent: repeating the call with the same
	// payload is safe, which is what makes blind pipeline retries sound.
	UpsertRecords(ctx context.Context, userID string, entityType models.EntityType, records []models.SyncRecord) error
}

// ObjectStorage is the client-side view of the binary payload store used
// for file entities. Keys are content-addressed; the metadata pipeline never
// sees payload bytes.
type ObjectStorage interface {
	// SetToken stores the session token attached to every subsequent
	// request. Safe for concurrent use.
	SetToken(token string)

	// PutObject uploads payload bytes under the given key, replacing any
	// existing object. Idempotent for identical content.
	PutObject(ctx context.Context, key string, payload []byte) error

	// SignedDownloadURL asks the remote to issue a time-limited download
	// URL for the object under key.
	SignedDownloadURL(ctx context.Context, key string, ttl time.Duration) (models.SignedURL, error)

	// DeleteObject removes the object under key. Deleting a missing object
	// is not an error.
	DeleteObject(ctx context.Context, key string) error
}
