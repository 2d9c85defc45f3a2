// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to downstream payout connectors.
//
// The primary abstraction is [ConnectorAdapter], which hides the transport
// used to reach a connector from the service layer. Transport failures are
// mapped to the sentinel values in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/payout-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConnectorAdapter probes payout connectors.
type ConnectorAdapter interface {
	// Health checks whether connector is ready to accept payouts. A nil
	// error means healthy. Connectors without a health URL are always
	// healthy.
	Health(ctx context.Context, connector models.Connector) error
}
