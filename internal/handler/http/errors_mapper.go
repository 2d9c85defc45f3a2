// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/payout-gateway/internal/auth"
	"github.com/MKhiriev/payout-gateway/internal/pipeline"
	"github.com/MKhiriev/payout-gateway/internal/service"
	"github.com/MKhiriev/payout-gateway/internal/validators"
	"github.com/MKhiriev/payout-gateway/models"
)

type errorClass struct {
	target  error
	kind    models.ErrorKind
	code    string
	message string
}

// errorClasses is checked in order, the first match wins. Store failures
// during authentication are wrapped by pipeline.ErrAuthentication too, so
// they are listed before it.
var errorClasses = []errorClass{
	{pipeline.ErrMalformedPayload, models.ErrorKindMalformedPayload, "IR_06", ""},

	{auth.ErrCredentialLookup, models.ErrorKindInternal, "HE_00", ""},
	{auth.ErrAccountDeactivated, models.ErrorKindAuthenticationFailure, "IR_01", "Merchant account is deactivated"},
	{pipeline.ErrAuthentication, models.ErrorKindAuthenticationFailure, "IR_01", "API key not provided or invalid API key used"},

	{validators.ErrMissingField, models.ErrorKindValidation, "IR_04", ""},
	{service.ErrDuplicatePayout, models.ErrorKindValidation, "IR_07", ""},
	{service.ErrPayoutsDisabled, models.ErrorKindValidation, "IR_08", ""},
	{service.ErrCurrencyNotEnabled, models.ErrorKindValidation, "IR_05", ""},
	{service.ErrAmountExceedsLimit, models.ErrorKindValidation, "IR_05", ""},
	{validators.ErrInvalidField, models.ErrorKindValidation, "IR_05", ""},

	{service.ErrNoEligibleConnector, models.ErrorKindConnectorSelectionFailure, "HE_03", ""},
}

// classifyError maps err onto the client-facing error. Unknown errors are
// internal.
func classifyError(err error) models.APIError {
	for _, class := range errorClasses {
		if !errors.Is(err, class.target) {
			continue
		}

		apiErr := models.APIError{Kind: class.kind, Code: class.code, Message: class.message}

		var fieldErr *validators.FieldError
		if errors.As(err, &fieldErr) {
			apiErr.Field = fieldErr.Field
		}
		if apiErr.Message == "" {
			apiErr.Message = describe(class, apiErr.Field, err)
		}
		return apiErr
	}

	return models.APIError{
		Kind:    models.ErrorKindInternal,
		Code:    "HE_00",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func describe(class errorClass, field string, err error) string {
	switch class.code {
	case "IR_04":
		return fmt.Sprintf("Missing required param: %s", field)
	case "IR_07":
		return "Duplicate payout request"
	case "IR_08":
		return "Payouts are not enabled for this merchant account"
	}
	return err.Error()
}
