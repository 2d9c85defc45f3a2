// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/utils"
	"github.com/MKhiriev/payout-gateway/models"
)

type httpConnectorAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPConnectorAdapter constructs an HTTP implementation of
// [ConnectorAdapter]. Every probe is bounded by timeout.
func NewHTTPConnectorAdapter(timeout time.Duration, logger *logger.Logger) ConnectorAdapter {
	return &httpConnectorAdapter{
		client: utils.NewHTTPClient(timeout),
		logger: logger,
	}
}

// Health implements [ConnectorAdapter]. It issues GET on the connector's
// health URL and treats any 2xx answer as healthy.
func (h *httpConnectorAdapter) Health(ctx context.Context, connector models.Connector) error {
	if strings.TrimSpace(connector.HealthURL) == "" {
		return nil
	}

	healthURL, err := normalizeURL(connector.HealthURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidHealthURL, connector.Name, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(healthURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConnectorUnreachable, connector.Name, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("connector %s: %w", connector.Name, err)
	}

	h.logger.Debug().
		Str("connector", connector.Name).
		Dur("latency", resp.Time()).
		Msg("connector is healthy")

	return nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}
