// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// Connector is a downstream payment processor able to carry out payouts.
type Connector struct {
	// Name uniquely identifies the connector (e.g. "adyen", "wise").
	Name string `json:"name"`

	// HealthURL is probed by the health worker. Connectors without a
	// health URL are considered healthy.
	HealthURL string `json:"health_url,omitempty"`

	// Currencies lists ISO-4217 codes the connector can pay out in.
	Currencies []string `json:"currencies"`

	// Countries optionally restricts the destination countries (ISO-3166
	// alpha-2). Empty means no restriction.
	Countries []string `json:"countries,omitempty"`
}

// SupportsCurrency reports whether the connector can pay out in currency.
func (c Connector) SupportsCurrency(currency string) bool {
	return slices.ContainsFunc(c.Currencies, func(v string) bool {
		return strings.EqualFold(v, currency)
	})
}

// SupportsCountry reports whether the connector serves the destination
// country. An empty country matches every connector.
func (c Connector) SupportsCountry(country string) bool {
	if country == "" || len(c.Countries) == 0 {
		return true
	}
	return slices.ContainsFunc(c.Countries, func(v string) bool {
		return strings.EqualFold(v, country)
	})
}
