// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background processes of the gateway.
// It defines the Worker interface and a Workers aggregate that runs several
// workers together and stops them all when one fails.
package workers

import (
	"context"

	"github.com/MKhiriev/payout-gateway/models"
)

// Worker is a background process. Run blocks until ctx is cancelled or the
// worker fails; cancellation is not a failure.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// ConnectorRegistry receives connector probe results.
type ConnectorRegistry interface {
	Connectors() []models.Connector
	Report(name string, err error)
	AnyHealthy() bool
}
