// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// Decoder extracts the operation payload from a request.
type Decoder[Req any] func(r *http.Request) (Req, error)

// DecodeJSON reads one JSON document from the request body. Anything that
// is not exactly one well-formed document of type Req is reported as
// ErrMalformedPayload.
func DecodeJSON[Req any](r *http.Request) (Req, error) {
	var payload Req
	if r.Body == nil {
		return payload, fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := decoder.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, fmt.Errorf("%w: empty body", ErrMalformedPayload)
		}
		return payload, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if decoder.More() {
		return payload, fmt.Errorf("%w: unexpected data after JSON document", ErrMalformedPayload)
	}

	return payload, nil
}

// NoPayload is the decoder of operations without a request body.
func NoPayload(*http.Request) (struct{}, error) {
	return struct{}{}, nil
}
