// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is wrapped by [FieldError] when a mandatory field is
	// absent from the payload.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is wrapped by [FieldError] when a field is present but
	// its value breaks a rule.
	ErrInvalidField = errors.New("invalid field value")
)

// FieldError names the payload field that failed validation.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Rule is the violated rule (e.g. "required", "gt", "iso4217").
	Rule string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Err, e.Field, e.Rule)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
