// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/payout-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MerchantRepository resolves merchant accounts by their credentials.
// Merchant data is read-only to the gateway.
type MerchantRepository interface {
	FindByAPIKeyHash(ctx context.Context, apiKeyHash string) (models.MerchantAccount, error)
	FindByPublishableKey(ctx context.Context, publishableKey string) (models.MerchantAccount, error)
	FindByID(ctx context.Context, merchantID string) (models.MerchantAccount, error)
}

// PayoutRepository persists created payouts.
type PayoutRepository interface {
	// Exists reports whether the merchant already has a payout with the id.
	Exists(ctx context.Context, merchantID, payoutID string) (bool, error)

	// Create stores the payout in its own transaction. A context cancelled
	// before commit rolls the insert back.
	Create(ctx context.Context, payout models.Payout) (models.Payout, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
