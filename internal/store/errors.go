package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownEntityType is returned when an operation names an entity
	// type that has no local table. Records for unknown types are never
	// silently dropped; the caller decides how to report the failure.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrRecordsNotSaved is returned when an upsert of one or more records
	// completes without a driver error but the number of affected rows is
	// zero, indicating that no data was actually persisted.
	ErrRecordsNotSaved = errors.New("sync records were not saved")

	// ErrWatermarkNotSaved is returned when the watermark upsert reports
	// zero affected rows. Because the watermark gates retry windows, a
	// silent no-op here would skip remote changes on the next run.
	ErrWatermarkNotSaved = errors.New("sync watermark was not saved")
)
