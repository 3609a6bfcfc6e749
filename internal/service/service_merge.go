package service

import (
	"context"

	"github.com/obolotin/daykeeper/models"
)

// mergeService is the concrete implementation of MergeService.
// It performs a purely in-memory last-writer-wins comparison of the two
// collections; no storage layer or logger is required because the operation
// is stateless and produces no side effects.
type mergeService struct{}

// NewMergeService constructs a MergeService ready for use.
func NewMergeService() MergeService {
	return &mergeService{}
}

// Reconcile implements MergeService.
//
// It starts from a copy of the local collection, then folds every remote
// record in:
//
//   - id unknown locally → the remote record is adopted as-is.
//   - id present on both sides → the record with the strictly later
//     UpdatedAt wins. On an exact tie the local record is retained, so a
//     device's own copy is never replaced by an equally-recent remote one.
//
// Soft-deleted records participate like any other record: a deletion is a
// mutation with a bumped UpdatedAt, so it wins or loses by recency alone.
// The union never shrinks — a record absent from one side is always kept.
func (s *mergeService) Reconcile(
	ctx context.Context,
	local map[string]models.SyncRecord,
	remote []models.SyncRecord,
) (models.ReconciledCollection, error) {
	merged := make(models.ReconciledCollection, len(local)+len(remote))
	for id, rec := range local {
		merged[id] = rec
	}

	for _, remoteRec := range remote {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		localRec, existsLocally := merged[remoteRec.ID]
		if !existsLocally {
			merged[remoteRec.ID] = remoteRec
			continue
		}

		if remoteRec.UpdatedAt.After(localRec.UpdatedAt) {
			merged[remoteRec.ID] = remoteRec
		}
		// remoteRec.UpdatedAt <= localRec.UpdatedAt: local copy stands.
	}

	return merged, nil
}
