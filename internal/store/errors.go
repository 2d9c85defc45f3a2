// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrMerchantNotFound is returned when no merchant account matches the
	// lookup key.
	ErrMerchantNotFound = errors.New("merchant account was not found")

	// ErrDuplicatePayout is returned when a payout with the same
	// (merchant_id, payout_id) is already stored.
	ErrDuplicatePayout = errors.New("payout already exists")

	// ErrPayoutNotSaved is returned when the INSERT completes without error
	// but affects no rows.
	ErrPayoutNotSaved = errors.New("payout was not saved")

	// ErrUnsupportedDriver is returned for an unknown DB.Driver value.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
)
