// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthFlow tells business logic on whose behalf a request was authenticated.
type AuthFlow string

const (
	// AuthFlowMerchant is used when the caller presented merchant-level
	// credentials (secret API key or dashboard token).
	AuthFlowMerchant AuthFlow = "merchant"

	// AuthFlowCustomer is used when the caller presented a client-side
	// publishable key, i.e. the request was initiated by the merchant's customer.
	AuthFlowCustomer AuthFlow = "customer"
)

func (f AuthFlow) String() string {
	return string(f)
}

// AuthContext is the identity established by an authentication strategy.
//
// It is produced only by a successful strategy resolution and handed to
// operation handlers by value, so handlers can read it but never alter the
// copy held by the pipeline.
type AuthContext struct {
	// MerchantAccount is the account on whose behalf the operation executes.
	// It is the zero value for anonymous placeholder endpoints.
	MerchantAccount MerchantAccount

	// AuthFlow distinguishes merchant-initiated from customer-initiated calls.
	AuthFlow AuthFlow
}

// MerchantID is a shortcut for AuthContext.MerchantAccount.MerchantID.
func (a AuthContext) MerchantID() string {
	return a.MerchantAccount.MerchantID
}

// IsAnonymous reports whether no merchant account is attached.
func (a AuthContext) IsAnonymous() bool {
	return a.MerchantAccount.MerchantID == ""
}
