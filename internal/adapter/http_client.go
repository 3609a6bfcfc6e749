package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/obolotin/daykeeper/models"
)

// HTTPClientConfig configures the remote store HTTP client.
type HTTPClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RetryMaxElapsed time.Duration
}

type httpRemoteStore struct {
	client          *resty.Client
	retryMaxElapsed time.Duration

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteStore builds a RemoteStore talking to the sync API at
// cfg.BaseURL. Transient transport failures and 5xx responses are retried
// with exponential backoff; both sync endpoints are idempotent, so a retry
// after an ambiguous failure is safe.
func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli, retryMaxElapsed: cfg.RetryMaxElapsed}
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) FetchDelta(ctx context.Context, userID string, entityType models.EntityType, since *time.Time) ([]models.RawRecord, error) {
	var dr models.DeltaResponse

	err := h.withRetry(ctx, func() error {
		req := h.authedRequest(ctx).
			SetQueryParam("user_id", userID)
		if since != nil {
			req.SetQueryParam("modified_since", since.UTC().Format(time.RFC3339Nano))
		}

		resp, err := req.Get("/api/sync/" + entityType.String())
		if err != nil {
			return fmt.Errorf("fetch delta request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		dr = models.DeltaResponse{}
		if err = json.Unmarshal(resp.Body(), &dr); err != nil {
			return fmt.Errorf("decode delta response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dr.Records, nil
}

func (h *httpRemoteStore) UpsertRecords(ctx context.Context, userID string, entityType models.EntityType, records []models.SyncRecord) error {
	if len(records) == 0 {
		return nil
	}

	body := models.UpsertRequest{
		UserID:     userID,
		EntityType: entityType,
		Records:    records,
		Length:     len(records),
	}

	return h.withRetry(ctx, func() error {
		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Put("/api/sync/" + entityType.String())
		if err != nil {
			return fmt.Errorf("upsert records request: %w", err)
		}

		return mapHTTPError(resp)
	})
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// withRetry executes op with exponential backoff for transient failures.
// Permanent failures (4xx responses, decode errors) stop retrying immediately.
func (h *httpRemoteStore) withRetry(ctx context.Context, op func() error) error {
	// BackOff implementations are stateful; always use a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = h.retryMaxElapsed

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
