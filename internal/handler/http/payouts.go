// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/payout-gateway/internal/auth"
	"github.com/MKhiriev/payout-gateway/internal/pipeline"
	"github.com/MKhiriev/payout-gateway/models"
)

const (
	payoutRetrieve = models.PayoutRetrieve
	payoutUpdate   = models.PayoutUpdate
	payoutReverse  = models.PayoutReverse
	payoutCancel   = models.PayoutCancel
	payoutAccounts = models.PayoutAccounts
)

// createPayout binds the create operation to strategy. The same operation
// serves server, client and dashboard callers; only the strategy differs.
func (h *Handler) createPayout(strategy auth.Strategy) http.HandlerFunc {
	return pipeline.Serve(
		h.pipeline,
		models.FlowPayoutsCreate,
		pipeline.DecodeJSON[models.PayoutRequest],
		h.services.PayoutService.Create,
		strategy,
	)
}

// placeholder binds an operation that only acknowledges the call.
func (h *Handler) placeholder(op models.PayoutOperation) http.HandlerFunc {
	acknowledge := func(ctx context.Context, authCtx models.AuthContext, _ struct{}) (string, error) {
		return h.services.PayoutService.Acknowledge(ctx, authCtx, op)
	}

	return pipeline.Serve(h.pipeline, op.Flow(), pipeline.NoPayload, acknowledge, h.strategies.None)
}
