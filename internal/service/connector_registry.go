// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/payout-gateway/models"
)

// ConnectorHealth is the last probe result of one connector.
type ConnectorHealth struct {
	Healthy   bool
	LastError string
	CheckedAt time.Time
}

// ConnectorRegistry keeps the configured connectors together with their
// latest health. A connector that was never probed counts as healthy.
//
// It is safe for concurrent use: the health worker writes while request
// goroutines read.
type ConnectorRegistry struct {
	connectors []models.Connector

	mu     sync.RWMutex
	health map[string]ConnectorHealth
}

func NewConnectorRegistry(connectors []models.Connector) *ConnectorRegistry {
	return &ConnectorRegistry{
		connectors: connectors,
		health:     make(map[string]ConnectorHealth, len(connectors)),
	}
}

// Connectors returns the configured connectors in selection order.
func (r *ConnectorRegistry) Connectors() []models.Connector {
	out := make([]models.Connector, len(r.connectors))
	copy(out, r.connectors)
	return out
}

// Report records a probe result. A nil err marks the connector healthy.
func (r *ConnectorRegistry) Report(name string, err error) {
	h := ConnectorHealth{Healthy: err == nil, CheckedAt: time.Now()}
	if err != nil {
		h.LastError = err.Error()
	}

	r.mu.Lock()
	r.health[name] = h
	r.mu.Unlock()
}

// Health returns the last probe result of the named connector.
func (r *ConnectorRegistry) Health(name string) (ConnectorHealth, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.health[name]
	return h, ok
}

// IsHealthy reports whether the named connector may receive payouts.
func (r *ConnectorRegistry) IsHealthy(name string) bool {
	h, probed := r.Health(name)
	return !probed || h.Healthy
}

// AnyHealthy reports whether at least one connector can serve payouts.
func (r *ConnectorRegistry) AnyHealthy() bool {
	for _, c := range r.connectors {
		if r.IsHealthy(c.Name) {
			return true
		}
	}
	return false
}

// Select implements [ConnectorSelector].
func (r *ConnectorRegistry) Select(ctx context.Context, currency, country string) (models.Connector, error) {
	if err := ctx.Err(); err != nil {
		return models.Connector{}, err
	}

	for _, c := range r.connectors {
		if c.SupportsCurrency(currency) && c.SupportsCountry(country) && r.IsHealthy(c.Name) {
			return c, nil
		}
	}

	return models.Connector{}, fmt.Errorf("%w: currency=%s country=%s", ErrNoEligibleConnector, currency, country)
}
