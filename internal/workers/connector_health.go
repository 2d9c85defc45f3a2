// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/payout-gateway/internal/adapter"
	"github.com/MKhiriev/payout-gateway/internal/logger"
)

const maxParallelProbes = 4

var ErrInvalidInterval = errors.New("health check interval must be positive")

// ConnectorHealthWorker periodically probes every configured connector and
// records the outcome in the registry. After each round onStatus, when set,
// learns whether any connector can serve payouts.
type ConnectorHealthWorker struct {
	adapter  adapter.ConnectorAdapter
	registry ConnectorRegistry
	interval time.Duration
	onStatus func(serving bool)

	logger *logger.Logger
}

func NewConnectorHealthWorker(
	connectorAdapter adapter.ConnectorAdapter,
	registry ConnectorRegistry,
	interval time.Duration,
	onStatus func(serving bool),
	logger *logger.Logger,
) (*ConnectorHealthWorker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return &ConnectorHealthWorker{
		adapter:  connectorAdapter,
		registry: registry,
		interval: interval,
		onStatus: onStatus,
		logger:   logger,
	}, nil
}

// Run probes immediately and then once per interval until ctx is done.
func (w *ConnectorHealthWorker) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("connector health worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.probe(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("connector health worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (w *ConnectorHealthWorker) probe(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(maxParallelProbes)

	for _, connector := range w.registry.Connectors() {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, w.interval)
			defer cancel()

			err := w.adapter.Health(probeCtx, connector)
			if ctx.Err() != nil {
				// shutting down, keep the last known state
				return nil
			}

			w.registry.Report(connector.Name, err)
			if err != nil {
				w.logger.Warn().Err(err).Str("connector", connector.Name).Msg("connector is unhealthy")
			}
			return nil
		})
	}
	_ = g.Wait()

	if w.onStatus != nil && ctx.Err() == nil {
		w.onStatus(w.registry.AnyHealthy())
	}
}
