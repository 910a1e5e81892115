package main

import (
	"context"
	"fmt"

	"github.com/jankohoener/asknow/internal/adapter"
	"github.com/jankohoener/asknow/internal/config"
	httphandler "github.com/jankohoener/asknow/internal/handler/http"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/server"
	"github.com/jankohoener/asknow/internal/service"
	"github.com/jankohoener/asknow/internal/store"
	"github.com/jankohoener/asknow/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("asknow-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB, db.Dialect()); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	linker := adapter.NewSpotlightClient(adapter.SpotlightConfig{
		BaseURL:    cfg.Upstream.SpotlightURL,
		Confidence: cfg.Upstream.Confidence,
		RetryCount: cfg.Upstream.RetryCount,
		Timeout:    cfg.Upstream.Timeout,
	})
	fetcher := adapter.NewWikipediaClient(adapter.WikipediaConfig{
		BaseURL:     cfg.Upstream.WikipediaURL,
		RetryCount:  cfg.Upstream.RetryCount,
		MaxContinue: cfg.Upstream.MaxContinue,
		Timeout:     cfg.Upstream.Timeout,
	})

	services := service.NewServices(storages, linker, fetcher, *cfg, log)

	renderer, err := httphandler.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	handler := httphandler.NewHandler(services, renderer, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
