// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/models"
)

// PublishableKeyAuth authenticates client-side calls made with a merchant's
// publishable key. The resulting context is on the customer flow.
type PublishableKeyAuth struct {
	merchants store.MerchantRepository
}

func NewPublishableKeyAuth(merchants store.MerchantRepository) *PublishableKeyAuth {
	return &PublishableKeyAuth{merchants: merchants}
}

func (a *PublishableKeyAuth) Authenticate(ctx context.Context, r *http.Request) (models.AuthContext, error) {
	key := strings.TrimSpace(r.Header.Get(HeaderAPIKey))
	if key == "" {
		return models.AuthContext{}, ErrMissingCredentials
	}
	if !strings.HasPrefix(key, PublishableKeyPrefix) {
		return models.AuthContext{}, ErrInvalidCredentials
	}

	merchant, err := a.merchants.FindByPublishableKey(ctx, key)
	return resolveMerchant(merchant, err, models.AuthFlowCustomer)
}
