// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Bolotin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// daykeeper client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the remote store and object
	// storage endpoints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UserID is the opaque account identifier of the signed-in user, issued
	// by the external identity provider.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// Token is the opaque session token attached to every outbound request.
	// The engine never inspects it.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (or connection string) used to open the
	// local database (e.g. "~/.daykeeper/client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound transports: the remote store
// HTTP API and the object storage API.
type Adapter struct {
	// BaseURL is the base URL of the remote store API
	// (e.g. "https://sync.daykeeper.app").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ObjectStorageURL is the base URL of the object storage API used for
	// binary file payloads. Defaults to BaseURL when empty.
	// Env: ADAPTER_OBJECT_STORAGE_URL
	ObjectStorageURL string `env:"OBJECT_STORAGE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before it is cancelled (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryMaxElapsed bounds the total time spent retrying one idempotent
	// network call with exponential backoff. Zero disables retries.
	// Env: ADAPTER_RETRY_MAX_ELAPSED
	RetryMaxElapsed time.Duration `env:"RETRY_MAX_ELAPSED"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
