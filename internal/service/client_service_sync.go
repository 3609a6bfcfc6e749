package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/obolotin/daykeeper/internal/adapter"
	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/internal/store"
	"github.com/obolotin/daykeeper/models"
)

type clientSyncService struct {
	records    store.RecordRepository
	watermarks store.WatermarkRepository
	remote     adapter.RemoteStore
	merger     MergeService
	logger     *logger.Logger

	// now is injectable so tests can pin the watermark timestamp.
	now func() time.Time

	mu     sync.Mutex
	active map[string]struct{}
}

// NewClientSyncService wires the sync engine over the local storages and the
// remote store adapter.
func NewClientSyncService(storages *store.ClientStorages, remote adapter.RemoteStore, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		records:    storages.Records,
		watermarks: storages.Watermarks,
		remote:     remote,
		merger:     NewMergeService(),
		logger:     log,
		now:        time.Now,
		active:     make(map[string]struct{}),
	}
}

// SyncAll implements ClientSyncService. Entity-type pipelines run
// concurrently; each one owns its own watermark and fails independently, so
// a failed type leaves the others' results and watermarks untouched.
func (s *clientSyncService) SyncAll(ctx context.Context, userID string, entityTypes ...models.EntityType) (models.SyncReport, error) {
	if userID == "" {
		return models.SyncReport{}, ErrNoUserID
	}
	if len(entityTypes) == 0 {
		entityTypes = models.AllEntityTypes()
	}
	// de-dup: two pipelines for the same (user, type) would race on one
	// watermark row
	seen := make(map[models.EntityType]struct{}, len(entityTypes))
	unique := make([]models.EntityType, 0, len(entityTypes))
	for _, entityType := range entityTypes {
		if !entityType.Valid() {
			return models.SyncReport{}, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
		}
		if _, ok := seen[entityType]; ok {
			continue
		}
		seen[entityType] = struct{}{}
		unique = append(unique, entityType)
	}
	entityTypes = unique
	if !s.acquire(userID) {
		return models.SyncReport{}, fmt.Errorf("%w: %s", ErrSyncInProgress, userID)
	}
	defer s.release(userID)

	report := models.SyncReport{
		UserID:    userID,
		StartedAt: s.now().UTC(),
		Results:   make(map[models.EntityType]models.SyncResult, len(entityTypes)),
	}

	var resMu sync.Mutex
	// a plain group, not WithContext: one failed pipeline must not cancel
	// its siblings mid-write
	var g errgroup.Group

	for _, entityType := range entityTypes {
		entityType := entityType
		g.Go(func() error {
			result := s.syncEntity(ctx, userID, entityType)

			resMu.Lock()
			report.Results[entityType] = result
			resMu.Unlock()

			return result.Err
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "SyncAll").Str("user_id", userID).Msg("sync pass finished with failures")
	}
	report.FinishedAt = s.now().UTC()

	return report, nil
}

// SyncEntity implements ClientSyncService for a single entity type, under
// the same per-user exclusion as SyncAll.
func (s *clientSyncService) SyncEntity(ctx context.Context, userID string, entityType models.EntityType) (models.SyncResult, error) {
	if userID == "" {
		return models.SyncResult{}, ErrNoUserID
	}
	if !entityType.Valid() {
		return models.SyncResult{}, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}
	if !s.acquire(userID) {
		return models.SyncResult{}, fmt.Errorf("%w: %s", ErrSyncInProgress, userID)
	}
	defer s.release(userID)

	result := s.syncEntity(ctx, userID, entityType)
	return result, result.Err
}

// syncEntity runs the delta pipeline for one (user, entity type) pair:
// watermark → fetch → decode → merge → write local → write remote →
// advance watermark. The watermark only moves after every prior step
// succeeded, so an interrupted run re-fetches the same window next time and
// converges by recomputing the same merge.
func (s *clientSyncService) syncEntity(ctx context.Context, userID string, entityType models.EntityType) models.SyncResult {
	log := s.logger.WithFields(map[string]string{
		"user_id":     userID,
		"entity_type": entityType.String(),
	})

	var result models.SyncResult

	watermark, err := s.watermarks.GetWatermark(ctx, userID, entityType)
	if err != nil {
		return s.fail(log, result, ErrWatermarkRead, err)
	}

	rawRecords, err := s.remote.FetchDelta(ctx, userID, entityType, watermark.LastSyncAt)
	if err != nil {
		return s.fail(log, result, ErrFetch, err)
	}
	result.Fetched = len(rawRecords)

	localRecords, err := s.records.ListRecords(ctx, userID, entityType)
	if err != nil {
		return s.fail(log, result, ErrLocalRead, err)
	}

	remoteRecords := make([]models.SyncRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		record, decodeErr := decodeRecord(entityType, raw)
		if decodeErr != nil {
			// malformed remote records are skipped, never fatal
			result.Skipped++
			log.Warn().Err(decodeErr).Str("func", "syncEntity").Msg("skipping malformed delta record")
			continue
		}
		remoteRecords = append(remoteRecords, record)
	}

	merged, err := s.merger.Reconcile(ctx, localRecords, remoteRecords)
	if err != nil {
		// only fails on context cancellation; no taxonomy sentinel applies
		log.Err(err).Str("func", "syncEntity").Msg("reconcile aborted")
		result.Status = models.SyncStatusFailed
		result.Err = fmt.Errorf("reconcile aborted: %w", err)
		return result
	}
	result.Merged = len(merged)

	mergedRecords := merged.Records()

	if err = s.records.UpsertRecords(ctx, userID, entityType, mergedRecords...); err != nil {
		return s.fail(log, result, ErrLocalWrite, err)
	}

	if err = s.remote.UpsertRecords(ctx, userID, entityType, mergedRecords); err != nil {
		return s.fail(log, result, ErrRemoteWrite, err)
	}

	syncedAt := s.now().UTC()
	watermark.LastSyncAt = &syncedAt
	watermark.Version++
	if err = s.watermarks.SetWatermark(ctx, watermark); err != nil {
		return s.fail(log, result, ErrWatermarkPersist, err)
	}

	result.Status = models.SyncStatusSuccess
	log.Info().
		Int("fetched", result.Fetched).
		Int("skipped", result.Skipped).
		Int("merged", result.Merged).
		Int64("watermark_version", watermark.Version).
		Msg("entity sync complete")

	return result
}

// fail marks the result as failed, wrapping the cause with its stage sentinel
// so both stay matchable with errors.Is.
func (s *clientSyncService) fail(log *logger.Logger, result models.SyncResult, stage, err error) models.SyncResult {
	log.Err(err).Str("func", "syncEntity").Msg(stage.Error())

	result.Status = models.SyncStatusFailed
	result.Err = fmt.Errorf("%w: %w", stage, err)
	return result
}

// acquire marks userID as having an active run. Returns false if one is
// already active.
func (s *clientSyncService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, running := s.active[userID]; running {
		return false
	}
	s.active[userID] = struct{}{}
	return true
}

func (s *clientSyncService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
}
