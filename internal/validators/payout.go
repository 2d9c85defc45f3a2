// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/payout-gateway/models"
)

// JSON names of the payout request fields.
const (
	FieldPayoutID           = "payout_id"
	FieldAmount             = "amount"
	FieldCurrency           = "currency"
	FieldDestination        = "destination"
	FieldDestinationCountry = "destination_country"
	FieldDescription        = "description"
	FieldMetadata           = "metadata"
)

const tagNotBlank = "notblank"

// struct field names addressed by StructPartial
var payoutRequestFields = map[string]string{
	FieldPayoutID:           "PayoutID",
	FieldAmount:             "Amount",
	FieldCurrency:           "Currency",
	FieldDestination:        "Destination",
	FieldDestinationCountry: "DestinationCountry",
	FieldDescription:        "Description",
	FieldMetadata:           "Metadata",
}

// PayoutValidator checks payout payloads against the struct tags declared on
// [models.PayoutRequest].
type PayoutValidator struct {
	validate *validator.Validate
}

func NewPayoutValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(tagNotBlank, nonstandard.NotBlank)

	return &PayoutValidator{validate: v}
}

// Validate reports the first failing field in declaration order. With no
// fields given, the whole request is checked.
func (v *PayoutValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var req models.PayoutRequest
	switch value := obj.(type) {
	case models.PayoutRequest:
		req = value
	case *models.PayoutRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		req = *value
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, req)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := payoutRequestFields[f]
			if !ok {
				return ErrUnknownField
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, req, names...)
	}

	return toFieldError(err)
}

func toFieldError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	kind := ErrInvalidField
	// a nil pointer under "required" or a blank string is an absent field;
	// a present zero value is an invalid one
	switch {
	case fe.Tag() == "required" && (fe.Kind() == reflect.Ptr || fe.Kind() == reflect.Invalid):
		kind = ErrMissingField
	case fe.Tag() == tagNotBlank:
		kind = ErrMissingField
	}

	return &FieldError{
		Field: fe.Field(),
		Rule:  fe.Tag(),
		Err:   kind,
	}
}
