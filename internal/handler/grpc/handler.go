// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service for the payout
// gateway. The serving status of [ServiceName] follows connector health.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/service"
)

// ServiceName is the name under which payout dispatch readiness is reported.
const ServiceName = "payouts"

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler creates the health server. The initial status of [ServiceName]
// is taken from the connector registry when one is available.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}

	serving := true
	if services != nil && services.Connectors != nil {
		serving = services.Connectors.AnyHealthy()
	}
	h.SetServing(serving)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the reported status of [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("service", ServiceName).Str("status", status.String()).Msg("gRPC health status updated")
}

// Shutdown reports every service as not serving. It is called before the
// gRPC server stops so that clients drain first.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
