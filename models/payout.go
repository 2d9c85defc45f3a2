// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PayoutStatus is the lifecycle state of a stored payout.
type PayoutStatus string

const (
	// PayoutStatusRequiresFulfillment is assigned to a freshly created payout
	// that has a connector but was not yet executed by it.
	PayoutStatusRequiresFulfillment PayoutStatus = "requires_fulfillment"
)

// PayoutRequest is the body of a payout creation call.
//
// Mandatory fields are pointers so that an omitted field can be told apart
// from a zero value. Validation tags are evaluated by the payout validator.
type PayoutRequest struct {
	// PayoutID is an optional merchant-supplied identifier. When present it is
	// used for duplicate-request suppression.
	PayoutID *string `json:"payout_id,omitempty" validate:"omitempty,min=1,max=64,printascii"`

	// Amount is the payout amount in minor units of Currency.
	Amount *int64 `json:"amount" validate:"required,gt=0"`

	// Currency is an ISO-4217 currency code. Lowercase input is accepted and
	// upper-cased before validation.
	Currency *string `json:"currency" validate:"required,iso4217"`

	// Destination identifies the account receiving the funds. A value made
	// of whitespace only counts as absent.
	Destination *string `json:"destination" validate:"required,notblank,max=255"`

	// DestinationCountry optionally narrows connector selection (ISO-3166
	// alpha-2).
	DestinationCountry string `json:"destination_country,omitempty" validate:"omitempty,iso3166_1_alpha2"`

	Description string `json:"description,omitempty" validate:"max=255"`

	// Metadata is stored with the payout and never interpreted.
	Metadata map[string]string `json:"metadata,omitempty" validate:"max=50,dive,keys,min=1,max=40,endkeys,max=500"`
}

// Payout is the persisted representation of a created payout.
type Payout struct {
	PayoutID    string
	MerchantID  string
	Amount      int64
	Currency    string
	Destination string
	Country     string
	Description string
	Metadata    map[string]string
	Connector   string
	Status      PayoutStatus
	AuthFlow    AuthFlow
	CreatedAt   time.Time
}

// PayoutResponse is the structured body returned by a successful create.
type PayoutResponse struct {
	PayoutID    string       `json:"payout_id"`
	MerchantID  string       `json:"merchant_id"`
	Amount      int64        `json:"amount"`
	Currency    string       `json:"currency"`
	Destination string       `json:"destination"`
	Connector   string       `json:"connector"`
	Status      PayoutStatus `json:"status"`
	AuthFlow    AuthFlow     `json:"auth_flow"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewPayoutResponse builds the response body from a stored payout.
func NewPayoutResponse(p Payout) PayoutResponse {
	return PayoutResponse{
		PayoutID:    p.PayoutID,
		MerchantID:  p.MerchantID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Destination: p.Destination,
		Connector:   p.Connector,
		Status:      p.Status,
		AuthFlow:    p.AuthFlow,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
