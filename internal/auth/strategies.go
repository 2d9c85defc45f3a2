// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"

	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/internal/utils"
)

// Strategies is the closed set of strategies routes are bound to.
type Strategies struct {
	APIKey         Strategy
	PublishableKey Strategy
	Dashboard      Strategy
	None           Strategy
}

func NewStrategies(merchants store.MerchantRepository, cfg config.App) (*Strategies, error) {
	hasher, err := utils.NewAPIKeyHasher(cfg.APIKeyHashKey)
	if err != nil {
		return nil, fmt.Errorf("creating api key hasher: %w", err)
	}

	return &Strategies{
		APIKey:         NewAPIKeyAuth(merchants, hasher),
		PublishableKey: NewPublishableKeyAuth(merchants),
		Dashboard:      NewJWTAuth(merchants, cfg.TokenSignKey, cfg.TokenIssuer),
		None:           NewNoAuth(),
	}, nil
}
