// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/payout-gateway/internal/auth"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/pipeline"
	"github.com/MKhiriev/payout-gateway/internal/service"
	"github.com/MKhiriev/payout-gateway/models"
)

type Handler struct {
	services   *service.Services
	strategies *auth.Strategies
	pipeline   *pipeline.Pipeline

	requestTimeout time.Duration
	buildInfo      models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	strategies *auth.Strategies,
	tracer trace.Tracer,
	requestTimeout time.Duration,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		strategies:     strategies,
		pipeline:       pipeline.New(tracer, classifyError, logger),
		requestTimeout: requestTimeout,
		buildInfo:      buildInfo,
		logger:         logger,
	}
}
