package models

import "time"

// Typed payloads for each entity collection. The sync engine itself never
// inspects these; they exist for the surrounding application and for the
// registry codecs that validate a remote record parses before it enters the
// merge.

// TaskPayload is the type-specific body of a task record.
type TaskPayload struct {
	Title    string     `json:"title"`
	Body     string     `json:"body,omitempty"`
	Status   string     `json:"status"`
	Priority int        `json:"priority,omitempty"`
	DueAt    *time.Time `json:"due_at,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
}

// NotePayload is the type-specific body of a note record.
type NotePayload struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Folder   *string  `json:"folder,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Pinned   bool     `json:"pinned,omitempty"`
	Archived bool     `json:"archived,omitempty"`
}

// CalendarEventPayload is the type-specific body of a calendar event record.
type CalendarEventPayload struct {
	Title      string    `json:"title"`
	Location   string    `json:"location,omitempty"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	AllDay     bool      `json:"all_day,omitempty"`
	Recurrence *string   `json:"recurrence,omitempty"`
}

// FilePayload is the metadata body of a file record. The actual bytes live
// in object storage under StorageKey and are transferred by the file
// transfer service, never by the metadata pipeline.
type FilePayload struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`

	// StorageKey is the content-addressed object storage key. Empty until
	// the payload has been uploaded.
	StorageKey string `json:"storage_key,omitempty"`

	// ContentHash is the hex SHA-256 of the payload bytes, used both for
	// content addressing and for integrity checks on download.
	ContentHash string `json:"content_hash,omitempty"`
}
