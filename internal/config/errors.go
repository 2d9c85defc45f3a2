// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	ErrInvalidStorageConfigs   = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs       = errors.New("invalid app configuration")
	ErrInvalidServerConfigs    = errors.New("invalid server configuration")
	ErrInvalidPayoutConfigs    = errors.New("invalid payouts configuration")
	ErrInvalidConnectorConfigs = errors.New("invalid connectors configuration")
	ErrInvalidWorkerConfigs    = errors.New("invalid worker configuration")
)
