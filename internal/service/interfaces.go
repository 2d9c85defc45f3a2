// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/payout-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=PayoutServiceWrapper

// PayoutService executes payout operations on behalf of an authenticated
// merchant.
type PayoutService interface {
	// Create runs the payout creation stages in order: authorize, verify,
	// select a connector and persist. A stage never starts before its
	// predecessor succeeded.
	Create(ctx context.Context, auth models.AuthContext, req models.PayoutRequest) (models.PayoutResponse, error)

	// Acknowledge answers the placeholder operations with their fixed body.
	// It has no business effect.
	Acknowledge(ctx context.Context, auth models.AuthContext, op models.PayoutOperation) (string, error)
}

// PayoutServiceWrapper defines middleware composition for PayoutService.
// Implementations wrap an existing PayoutService to add behavior such as
// serialization or logging.
type PayoutServiceWrapper interface {
	Wrap(PayoutService) PayoutService
}

// ConnectorSelector picks the connector that will carry out a payout.
type ConnectorSelector interface {
	// Select returns the first healthy connector that supports currency and,
	// when country is not empty, the destination country.
	Select(ctx context.Context, currency, country string) (models.Connector, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
