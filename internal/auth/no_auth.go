// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/http"

	"github.com/MKhiriev/payout-gateway/models"
)

// NoAuth accepts every request with an anonymous merchant context. It is
// bound only to placeholder endpoints that have no business effect.
type NoAuth struct{}

func NewNoAuth() NoAuth {
	return NoAuth{}
}

func (NoAuth) Authenticate(context.Context, *http.Request) (models.AuthContext, error) {
	return models.AuthContext{AuthFlow: models.AuthFlowMerchant}, nil
}
