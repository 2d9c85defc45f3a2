// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Supported values of DB.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// validate checks that the merged [StructuredConfig] is usable at startup.
// An entirely empty configuration is accepted so that the builder can be
// exercised in isolation; as soon as any storage is configured every
// required group must be complete.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == "" {
		return nil
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.APIKeyHashKey == "" {
		return fmt.Errorf("%w: empty API key hash key", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Payouts.validate(); err != nil {
		return err
	}

	connectors := cfg.ConnectorList()
	if len(connectors) == 0 {
		return fmt.Errorf("%w: no connectors configured", ErrInvalidConnectorConfigs)
	}
	seen := make(map[string]struct{}, len(connectors))
	for _, c := range connectors {
		if c.Name == "" {
			return fmt.Errorf("%w: connector without a name", ErrInvalidConnectorConfigs)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: duplicate connector %q", ErrInvalidConnectorConfigs, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (p Payouts) validate() error {
	if p.DefaultMaxAmount != "" {
		if _, err := decimal.NewFromString(p.DefaultMaxAmount); err != nil {
			return fmt.Errorf("%w: default max amount: %w", ErrInvalidPayoutConfigs, err)
		}
	}
	for currency, limit := range p.MaxAmounts {
		d, err := decimal.NewFromString(limit)
		if err != nil {
			return fmt.Errorf("%w: limit for %s: %w", ErrInvalidPayoutConfigs, currency, err)
		}
		if !d.IsPositive() {
			return fmt.Errorf("%w: limit for %s must be positive", ErrInvalidPayoutConfigs, currency)
		}
	}
	return nil
}
