package main

import (
	"context"
	"fmt"

	"github.com/sgalab/sga-server/internal/config"
	"github.com/sgalab/sga-server/internal/handler"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/server"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/storage"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/workers"
	"github.com/sgalab/sga-server/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sga-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	if err = store.Seed(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("error seeding roles and admin user")
	}

	layout := storage.NewLayout(cfg.Storage.Files, log)
	if err = layout.EnsureDirectories(); err != nil {
		log.Fatal().Err(err).Msg("error preparing storage directories")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, layout, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(layout, cfg.Workers, log).Run()

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
