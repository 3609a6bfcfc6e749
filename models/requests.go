package models

import "time"

// UpsertRequest is the payload of the remote batch upsert endpoint. The
// endpoint is create-or-replace by id and idempotent: sending the same
// request twice leaves the remote collection in the same state.
type UpsertRequest struct {
	UserID     string       `json:"user_id"`
	EntityType EntityType   `json:"entity_type"`
	Records    []SyncRecord `json:"records"`
	Length     int          `json:"length"`
}

// DeltaResponse is the body returned by the remote delta endpoint. Records
// are undecoded so that one malformed record cannot fail the whole fetch.
// Ordering is unspecified.
type DeltaResponse struct {
	Records []RawRecord `json:"records"`
}

// SignedURL is a time-limited download URL issued by the object storage
// collaborator for one stored payload.
type SignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
