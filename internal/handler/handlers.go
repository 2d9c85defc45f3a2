// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/payout-gateway/internal/auth"
	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/handler/grpc"
	"github.com/MKhiriev/payout-gateway/internal/handler/http"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/service"
	"github.com/MKhiriev/payout-gateway/models"
)

// Handlers holds the transport handlers enabled by the server configuration.
// A nil field means the transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(
	services *service.Services,
	strategies *auth.Strategies,
	tracer trace.Tracer,
	cfg config.Server,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, strategies, tracer, cfg.RequestTimeout, buildInfo, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
