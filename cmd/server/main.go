// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/secrets-api/internal/config"
	"github.com/MKhiriev/secrets-api/internal/handler"
	"github.com/MKhiriev/secrets-api/internal/logger"
	"github.com/MKhiriev/secrets-api/internal/server"
	"github.com/MKhiriev/secrets-api/internal/service"
	"github.com/MKhiriev/secrets-api/internal/store"
	"github.com/MKhiriev/secrets-api/internal/workers"
	"github.com/MKhiriev/secrets-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("secrets-api")

	buildInfo := newBuildInfo()
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting secrets-api")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Storage.Redis.Address != "" {
		redisClient, err = store.NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	storages := store.NewStorages(db, redisClient, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return err
	}

	workers.NewWorkers(storages, cfg.Workers, log).Run(ctx)

	return srv.RunServer(ctx)
}

func newBuildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}
