// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/store"
)

type Services struct {
	PayoutService  PayoutService
	AppInfoService AppInfoService
	Connectors     *ConnectorRegistry
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	registry := NewConnectorRegistry(cfg.ConnectorList())

	payoutService, err := NewPayoutService(storages.PayoutRepository, registry, cfg.Payouts, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PayoutService:  NewSerialPayoutService().Wrap(payoutService),
		AppInfoService: appInfoService,
		Connectors:     registry,
	}, nil
}
