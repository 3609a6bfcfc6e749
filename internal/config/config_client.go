package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
	// UserID is the opaque identifier of the signed-in user.
	UserID string
	// Token is the opaque session token for outbound requests.
	Token string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the remote store API endpoint used by the client.
	BaseURL string
	// ObjectStorageURL is the object storage API endpoint for binary file
	// payloads. Empty means "same host as BaseURL".
	ObjectStorageURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryMaxElapsed bounds the total retry time per network call.
	RetryMaxElapsed time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job should run.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			UserID:  cfg.App.UserID,
			Token:   cfg.App.Token,
		},
		Adapter: ClientAdapter{
			BaseURL:          cfg.Adapter.BaseURL,
			ObjectStorageURL: cfg.Adapter.ObjectStorageURL,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			RetryMaxElapsed:  cfg.Adapter.RetryMaxElapsed,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
