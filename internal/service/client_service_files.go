package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/obolotin/daykeeper/internal/adapter"
	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/internal/utils"
	"github.com/obolotin/daykeeper/models"
)

// defaultDownloadTTL bounds a signed URL's lifetime when the caller does not
// ask for one.
const defaultDownloadTTL = time.Hour

type fileTransferService struct {
	objects adapter.ObjectStorage
	ids     *utils.UUIDGenerator
	logger  *logger.Logger

	now func() time.Time
}

// NewFileTransferService builds a FileTransferService over the object
// storage adapter.
func NewFileTransferService(objects adapter.ObjectStorage, log *logger.Logger) FileTransferService {
	return &fileTransferService{
		objects: objects,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
		now:     time.Now,
	}
}

// CreateFileRecord implements FileTransferService. The record id doubles as
// the file id inside the storage key, so the payload stays reachable from the
// record alone.
func (s *fileTransferService) CreateFileRecord(ctx context.Context, userID, name, contentType string, content []byte) (models.SyncRecord, error) {
	fileID := s.ids.Generate()

	payload, err := s.UploadPayload(ctx, userID, fileID, name, contentType, content)
	if err != nil {
		return models.SyncRecord{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("marshal file payload: %w", err)
	}

	now := s.now().UTC()
	return models.SyncRecord{
		ID:        fileID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		Payload:   raw,
	}, nil
}

// UploadPayload implements FileTransferService. The storage key embeds the
// SHA-256 of the content, so an edited file lands on a fresh key and a
// retried upload of the same bytes is a no-op on the remote side.
func (s *fileTransferService) UploadPayload(ctx context.Context, userID, fileID, name, contentType string, content []byte) (models.FilePayload, error) {
	if userID == "" {
		return models.FilePayload{}, ErrNoUserID
	}
	if len(content) == 0 {
		return models.FilePayload{}, ErrEmptyFilePayload
	}

	contentHash := utils.ContentHash(content)
	key := utils.ObjectKey(userID, fileID, contentHash)

	if err := s.objects.PutObject(ctx, key, content); err != nil {
		s.logger.Err(err).Str("func", "UploadPayload").Str("key", key).Msg("object upload failed")
		return models.FilePayload{}, fmt.Errorf("put object %s: %w", key, err)
	}

	s.logger.Info().
		Str("key", key).
		Int("size", len(content)).
		Msg("file payload uploaded")

	return models.FilePayload{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		StorageKey:  key,
		ContentHash: contentHash,
	}, nil
}

// DownloadURL implements FileTransferService.
func (s *fileTransferService) DownloadURL(ctx context.Context, payload models.FilePayload, ttl time.Duration) (models.SignedURL, error) {
	if payload.StorageKey == "" {
		return models.SignedURL{}, ErrNoStorageKey
	}
	if ttl <= 0 {
		ttl = defaultDownloadTTL
	}

	signed, err := s.objects.SignedDownloadURL(ctx, payload.StorageKey, ttl)
	if err != nil {
		s.logger.Err(err).Str("func", "DownloadURL").Str("key", payload.StorageKey).Msg("signed url request failed")
		return models.SignedURL{}, fmt.Errorf("signed url for %s: %w", payload.StorageKey, err)
	}

	return signed, nil
}

// DeletePayload implements FileTransferService.
func (s *fileTransferService) DeletePayload(ctx context.Context, payload models.FilePayload) error {
	if payload.StorageKey == "" {
		return ErrNoStorageKey
	}

	if err := s.objects.DeleteObject(ctx, payload.StorageKey); err != nil {
		s.logger.Err(err).Str("func", "DeletePayload").Str("key", payload.StorageKey).Msg("object delete failed")
		return fmt.Errorf("delete object %s: %w", payload.StorageKey, err)
	}

	return nil
}
