// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation shared by the service layer.
//
// A Validator checks a value and may be scoped to a subset of named fields.
// Failures are reported as *FieldError wrapping ErrMissingField or
// ErrInvalidField so that callers can name the offending field.
package validators

import "context"

// Validator validates arbitrary input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
