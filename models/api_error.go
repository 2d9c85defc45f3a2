// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// ErrorKind classifies every failure the pipeline can report.
type ErrorKind string

const (
	ErrorKindMalformedPayload          ErrorKind = "malformed_payload"
	ErrorKindAuthenticationFailure     ErrorKind = "authentication_failure"
	ErrorKindValidation                ErrorKind = "validation_error"
	ErrorKindConnectorSelectionFailure ErrorKind = "connector_selection_failure"
	ErrorKindInternal                  ErrorKind = "internal_error"
)

// HTTPStatus maps the kind onto the transport status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrorKindMalformedPayload, ErrorKindValidation:
		return http.StatusBadRequest
	case ErrorKindAuthenticationFailure:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsOpaque reports whether details of the kind must be hidden from clients.
func (k ErrorKind) IsOpaque() bool {
	return k.HTTPStatus() >= http.StatusInternalServerError
}

// APIError is the client-facing description of a failure.
type APIError struct {
	Kind    ErrorKind `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Error APIError `json:"error"`
}
