package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s remote store base URL
//	-o object storage base URL
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-retry-max-elapsed total retry budget per network call (e.g., "30s")
//	-sync-interval background sync interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverBaseURL string
	var objectStorageURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var retryMaxElapsed time.Duration
	var syncInterval time.Duration

	flag.StringVar(&serverBaseURL, "s", "", "Remote store base URL")
	flag.StringVar(&objectStorageURL, "o", "", "Object storage base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&retryMaxElapsed, "retry-max-elapsed", 0, "Retry budget per network call (e.g., 30s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:          serverBaseURL,
			ObjectStorageURL: objectStorageURL,
			RequestTimeout:   requestTimeout,
			RetryMaxElapsed:  retryMaxElapsed,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}
