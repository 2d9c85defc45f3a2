// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/payout-gateway/models"
)

var (
	// ErrMalformedPayload is returned by decoders for bodies that are not
	// well-formed JSON of the expected shape.
	ErrMalformedPayload = errors.New("malformed request payload")

	// ErrAuthentication wraps every error returned by an auth strategy.
	ErrAuthentication = errors.New("authentication failed")

	// ErrUnknownFlow is returned by Run for a flow outside [models.Flows].
	ErrUnknownFlow = errors.New("unknown flow")
)

// Classifier turns an error into the client-facing description of it.
type Classifier func(err error) models.APIError

// DefaultClassifier knows only the errors raised by the pipeline itself.
// Everything else is an internal error.
func DefaultClassifier(err error) models.APIError {
	switch {
	case errors.Is(err, ErrMalformedPayload):
		return models.APIError{Kind: models.ErrorKindMalformedPayload, Code: "IR_06", Message: err.Error()}
	case errors.Is(err, ErrAuthentication):
		return models.APIError{Kind: models.ErrorKindAuthenticationFailure, Code: "IR_01", Message: "API key not provided or invalid API key used"}
	default:
		return models.APIError{Kind: models.ErrorKindInternal, Code: "HE_00", Message: http.StatusText(http.StatusInternalServerError)}
	}
}
