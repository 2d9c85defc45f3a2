// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidPayoutLimit    = errors.New("invalid payout limit")

	ErrCurrencyNotEnabled   = errors.New("currency is not enabled for merchant")
	ErrAmountExceedsLimit   = errors.New("amount exceeds payout limit")
	ErrDuplicatePayout      = errors.New("payout with this id already exists")
	ErrPayoutsDisabled      = errors.New("merchant is not eligible for payouts")
	ErrNoEligibleConnector  = errors.New("no healthy connector supports the payout")
	ErrMerchantRequired     = errors.New("operation requires an authenticated merchant")
	ErrUnsupportedOperation = errors.New("unsupported payout operation")
)
