package service

import "errors"

var (
	// ErrSyncInProgress is returned by SyncAll when a run for the same user
	// is already active. The caller retries later; runs are never queued.
	ErrSyncInProgress = errors.New("sync already in progress for user")

	ErrNoUserID          = errors.New("no user ID was given")
	ErrUnknownEntityType = errors.New("unknown entity type")

	// Stage sentinels for the pipeline. A failed stage wraps its cause with
	// one of these, so callers can match either the stage or the cause with
	// errors.Is.
	ErrFetch            = errors.New("delta fetch failed")
	ErrWatermarkRead    = errors.New("watermark read failed")
	ErrLocalRead        = errors.New("local store read failed")
	ErrLocalWrite       = errors.New("local store write failed")
	ErrRemoteWrite      = errors.New("remote store write failed")
	ErrWatermarkPersist = errors.New("watermark persist failed")

	ErrEmptyFilePayload = errors.New("empty file payload")
	ErrNoStorageKey     = errors.New("file record has no storage key")
)
