// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultClientRetries    = 2
	defaultClientRetryWait  = 200 * time.Millisecond
	defaultClientMaxBackoff = 2 * time.Second
)

// HTTPClient is a wrapper around resty.Client used for outbound calls to
// payout connectors.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
// Requests time out after timeout (zero disables the limit) and transient
// failures are retried with backoff.
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get(url)
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(defaultClientRetries).
		SetRetryWaitTime(defaultClientRetryWait).
		SetRetryMaxWaitTime(defaultClientMaxBackoff).
		SetHeader("User-Agent", "payout-gateway")

	return &HTTPClient{Client: client}
}
