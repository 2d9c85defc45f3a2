// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/MKhiriev/payout-gateway/internal/adapter"
	"github.com/MKhiriev/payout-gateway/internal/auth"
	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/handler"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/server"
	"github.com/MKhiriev/payout-gateway/internal/service"
	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/internal/workers"
	"github.com/MKhiriev/payout-gateway/models"
)

const (
	serviceName  = "payout-gateway"
	probeTimeout = 5 * time.Second
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(serviceName, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(serviceName, cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if err = run(context.Background(), cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	tracerProvider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tracerProvider)
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Err(err).Msg("error shutting down tracer provider")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	strategies, err := auth.NewStrategies(storages.MerchantRepository, cfg.App)
	if err != nil {
		return fmt.Errorf("error creating auth strategies: %w", err)
	}

	handlers, err := handler.NewHandlers(services, strategies, tracerProvider.Tracer(serviceName), cfg.Server, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	var onStatus func(serving bool)
	if handlers.GRPC != nil {
		onStatus = handlers.GRPC.SetServing
	}

	healthWorker, err := workers.NewConnectorHealthWorker(
		adapter.NewHTTPConnectorAdapter(probeTimeout, log),
		services.Connectors,
		cfg.Workers.HealthCheckInterval,
		onStatus,
		log,
	)
	if err != nil {
		return fmt.Errorf("error creating connector health worker: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(healthWorker), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
