// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/payout-gateway/internal/config"
)

// ISO-4217 minor unit exponents that differ from the usual two digits.
var currencyExponents = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0,
	"XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

func currencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// toMajorUnits converts an amount in minor units into major units of
// currency, e.g. 1050 USD cents into 10.50.
func toMajorUnits(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -currencyExponent(currency))
}

// payoutLimits holds the maximum payout amount per currency in major units.
type payoutLimits struct {
	perCurrency map[string]decimal.Decimal
	fallback    *decimal.Decimal
}

func newPayoutLimits(cfg config.Payouts) (payoutLimits, error) {
	limits := payoutLimits{perCurrency: make(map[string]decimal.Decimal, len(cfg.MaxAmounts))}

	for currency, raw := range cfg.MaxAmounts {
		limit, err := parseLimit(raw)
		if err != nil {
			return payoutLimits{}, fmt.Errorf("%w: %s: %w", ErrInvalidPayoutLimit, currency, err)
		}
		limits.perCurrency[strings.ToUpper(currency)] = limit
	}

	if strings.TrimSpace(cfg.DefaultMaxAmount) != "" {
		limit, err := parseLimit(cfg.DefaultMaxAmount)
		if err != nil {
			return payoutLimits{}, fmt.Errorf("%w: default: %w", ErrInvalidPayoutLimit, err)
		}
		limits.fallback = &limit
	}

	return limits, nil
}

func parseLimit(raw string) (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !limit.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("limit must be positive, got %s", raw)
	}
	return limit, nil
}

// check returns ErrAmountExceedsLimit when amount (minor units) is above the
// limit of currency. Currencies without a limit are unrestricted.
func (l payoutLimits) check(amount int64, currency string) error {
	limit, ok := l.perCurrency[strings.ToUpper(currency)]
	if !ok {
		if l.fallback == nil {
			return nil
		}
		limit = *l.fallback
	}

	if major := toMajorUnits(amount, currency); major.GreaterThan(limit) {
		return fmt.Errorf("%w: %s %s > %s", ErrAmountExceedsLimit, major.String(), strings.ToUpper(currency), limit.String())
	}
	return nil
}
