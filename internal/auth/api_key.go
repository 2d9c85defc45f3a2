// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/internal/utils"
	"github.com/MKhiriev/payout-gateway/models"
)

// APIKeyAuth authenticates server-to-server calls carrying a secret key in
// the "api-key" header. Keys are looked up by their keyed hash.
type APIKeyAuth struct {
	merchants store.MerchantRepository
	hasher    *utils.APIKeyHasher
}

func NewAPIKeyAuth(merchants store.MerchantRepository, hasher *utils.APIKeyHasher) *APIKeyAuth {
	return &APIKeyAuth{merchants: merchants, hasher: hasher}
}

func (a *APIKeyAuth) Authenticate(ctx context.Context, r *http.Request) (models.AuthContext, error) {
	apiKey := strings.TrimSpace(r.Header.Get(HeaderAPIKey))
	if apiKey == "" {
		return models.AuthContext{}, ErrMissingCredentials
	}
	if strings.HasPrefix(apiKey, PublishableKeyPrefix) {
		logger.FromContext(ctx).Debug().Msg("publishable key presented to a secret key endpoint")
		return models.AuthContext{}, ErrInvalidCredentials
	}

	merchant, err := a.merchants.FindByAPIKeyHash(ctx, a.hasher.Hash(apiKey))
	return resolveMerchant(merchant, err, models.AuthFlowMerchant)
}
