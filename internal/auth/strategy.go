// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth resolves caller credentials into a [models.AuthContext].
//
// Every endpoint is bound to exactly one Strategy when routes are built. The
// set of strategies is closed: secret API key, publishable key, dashboard
// JWT and the anonymous strategy used by placeholder endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/models"
)

// Header names read by the strategies.
const (
	HeaderAPIKey        = "api-key"
	HeaderAuthorization = "Authorization"
)

// PublishableKeyPrefix marks client-side keys that may only be used on
// customer-facing endpoints.
const PublishableKeyPrefix = "pk_"

var (
	// ErrMissingCredentials is returned when the request carries no
	// credential for the strategy.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidCredentials is returned when the credential is malformed or
	// matches no merchant account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDeactivated is returned for credentials of an inactive
	// merchant account.
	ErrAccountDeactivated = errors.New("merchant account is deactivated")

	// ErrCredentialLookup wraps failures of the merchant store itself. It is
	// not an authentication failure.
	ErrCredentialLookup = errors.New("credential lookup failed")
)

// Strategy resolves the credentials of r into an AuthContext.
type Strategy interface {
	Authenticate(ctx context.Context, r *http.Request) (models.AuthContext, error)
}

// resolveMerchant turns a repository lookup into an AuthContext, mapping a
// missing account to ErrInvalidCredentials and keeping store outages apart.
func resolveMerchant(merchant models.MerchantAccount, err error, flow models.AuthFlow) (models.AuthContext, error) {
	switch {
	case errors.Is(err, store.ErrMerchantNotFound):
		return models.AuthContext{}, ErrInvalidCredentials
	case err != nil:
		return models.AuthContext{}, fmt.Errorf("%w: %w", ErrCredentialLookup, err)
	case !merchant.IsActive:
		return models.AuthContext{}, ErrAccountDeactivated
	}

	return models.AuthContext{MerchantAccount: merchant, AuthFlow: flow}, nil
}

// StrategyFunc adapts an ordinary function to the Strategy interface.
type StrategyFunc func(ctx context.Context, r *http.Request) (models.AuthContext, error)

func (f StrategyFunc) Authenticate(ctx context.Context, r *http.Request) (models.AuthContext, error) {
	return f(ctx, r)
}
