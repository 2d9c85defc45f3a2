// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/http"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/internal/utils"
	"github.com/MKhiriev/payout-gateway/models"
)

// JWTAuth authenticates dashboard users by a bearer token whose subject is
// the merchant identifier.
type JWTAuth struct {
	merchants    store.MerchantRepository
	tokenSignKey string
	tokenIssuer  string
}

func NewJWTAuth(merchants store.MerchantRepository, tokenSignKey, tokenIssuer string) *JWTAuth {
	return &JWTAuth{
		merchants:    merchants,
		tokenSignKey: tokenSignKey,
		tokenIssuer:  tokenIssuer,
	}
}

func (a *JWTAuth) Authenticate(ctx context.Context, r *http.Request) (models.AuthContext, error) {
	header := r.Header.Get(HeaderAuthorization)
	if header == "" {
		return models.AuthContext{}, ErrMissingCredentials
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.AuthContext{}, ErrInvalidCredentials
	}

	merchantID, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("dashboard token rejected")
		return models.AuthContext{}, ErrInvalidCredentials
	}

	merchant, err := a.merchants.FindByID(ctx, merchantID)
	return resolveMerchant(merchant, err, models.AuthFlowMerchant)
}
