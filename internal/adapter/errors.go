// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidHealthURL     = errors.New("invalid connector health url")
	ErrConnectorUnreachable = errors.New("connector unreachable")
	ErrConnectorUnhealthy   = errors.New("connector reported unhealthy")
	ErrUnauthorized         = errors.New("connector rejected credentials")
	ErrNotFound             = errors.New("connector health endpoint not found")
	ErrUnexpectedStatus     = errors.New("unexpected connector response")
)
