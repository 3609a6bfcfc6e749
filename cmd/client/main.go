package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/obolotin/daykeeper/internal/adapter"
	"github.com/obolotin/daykeeper/internal/client"
	"github.com/obolotin/daykeeper/internal/config"
	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/internal/service"
	"github.com/obolotin/daykeeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("daykeeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL:         cfg.Adapter.BaseURL,
		Timeout:         cfg.Adapter.RequestTimeout,
		RetryMaxElapsed: cfg.Adapter.RetryMaxElapsed,
	})
	remote.SetToken(cfg.App.Token)

	objectStorageURL := cfg.Adapter.ObjectStorageURL
	if objectStorageURL == "" {
		objectStorageURL = cfg.Adapter.BaseURL
	}
	objects := adapter.NewHTTPObjectStorage(adapter.ObjectStorageConfig{
		BaseURL:         objectStorageURL,
		Timeout:         cfg.Adapter.RequestTimeout,
		RetryMaxElapsed: cfg.Adapter.RetryMaxElapsed,
	})
	objects.SetToken(cfg.App.Token)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, remote, objects, log)

	app, err := client.NewApp(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
