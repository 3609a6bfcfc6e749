package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/obolotin/daykeeper/models"
)

// ObjectStorageConfig configures the binary payload storage client.
type ObjectStorageConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RetryMaxElapsed time.Duration
}

type httpObjectStorage struct {
	client          *resty.Client
	retryMaxElapsed time.Duration

	mu    sync.RWMutex
	token string
}

// NewHTTPObjectStorage builds an ObjectStorage backed by the remote object
// API at cfg.BaseURL. Uploads are content-addressed, so retries after an
// ambiguous failure never corrupt stored payloads.
func NewHTTPObjectStorage(cfg ObjectStorageConfig) ObjectStorage {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpObjectStorage{client: cli, retryMaxElapsed: cfg.RetryMaxElapsed}
}

func (o *httpObjectStorage) SetToken(token string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.token = strings.TrimSpace(token)
}

func (o *httpObjectStorage) PutObject(ctx context.Context, key string, payload []byte) error {
	return o.withRetry(ctx, func() error {
		resp, err := o.authedRequest(ctx).
			SetHeader("Content-Type", "application/octet-stream").
			SetBody(payload).
			Put("/api/objects/" + key)
		if err != nil {
			return fmt.Errorf("put object request: %w", err)
		}

		return mapHTTPError(resp)
	})
}

func (o *httpObjectStorage) SignedDownloadURL(ctx context.Context, key string, ttl time.Duration) (models.SignedURL, error) {
	var signed models.SignedURL

	err := o.withRetry(ctx, func() error {
		resp, err := o.authedRequest(ctx).
			SetQueryParam("ttl_seconds", strconv.Itoa(int(ttl.Seconds()))).
			Get("/api/objects/" + key + "/url")
		if err != nil {
			return fmt.Errorf("signed url request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		signed = models.SignedURL{}
		if err = json.Unmarshal(resp.Body(), &signed); err != nil {
			return fmt.Errorf("decode signed url response: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.SignedURL{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return models.SignedURL{}, err
	}

	return signed, nil
}

func (o *httpObjectStorage) DeleteObject(ctx context.Context, key string) error {
	err := o.withRetry(ctx, func() error {
		resp, err := o.authedRequest(ctx).Delete("/api/objects/" + key)
		if err != nil {
			return fmt.Errorf("delete object request: %w", err)
		}

		return mapHTTPError(resp)
	})
	// deleting an already-absent object is a no-op, not a failure
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (o *httpObjectStorage) authedRequest(ctx context.Context) *resty.Request {
	req := o.client.R().SetContext(ctx)

	o.mu.RLock()
	token := o.token
	o.mu.RUnlock()

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (o *httpObjectStorage) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = o.retryMaxElapsed

	return backoff.Retry(func() error {
		err := op()
		if err != nil && isRetryableError(err) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(bo, ctx))
}
