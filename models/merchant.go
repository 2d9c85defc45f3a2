// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// MerchantAccount is the authenticated identity on whose behalf payouts are
// created. Records are owned by the merchant-account store and are read-only
// for the dispatch layer.
type MerchantAccount struct {
	// MerchantID is the public identifier of the merchant (e.g. "merchant_1").
	MerchantID string `json:"merchant_id"`

	// Name is the human-readable merchant name.
	Name string `json:"name"`

	// APIKeyHash is the keyed hash of the merchant's secret API key. The
	// plain key is never stored.
	APIKeyHash string `json:"-"`

	// PublishableKey is the client-side key used by customer-initiated flows.
	PublishableKey string `json:"publishable_key,omitempty"`

	// PayoutsEnabled reports whether the merchant may create payouts at all.
	PayoutsEnabled bool `json:"payouts_enabled"`

	// EnabledCurrencies lists ISO-4217 codes the merchant may pay out in.
	// An empty list means every currency is allowed.
	EnabledCurrencies []string `json:"enabled_currencies,omitempty"`

	// IsActive is false for deactivated accounts; such accounts can not
	// authenticate.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

// SupportsCurrency reports whether currency is enabled for the merchant.
func (m MerchantAccount) SupportsCurrency(currency string) bool {
	if len(m.EnabledCurrencies) == 0 {
		return true
	}
	return slices.ContainsFunc(m.EnabledCurrencies, func(c string) bool {
		return strings.EqualFold(c, currency)
	})
}
