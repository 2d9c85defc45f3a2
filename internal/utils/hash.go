// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// APIKeyHasher derives the lookup hash of merchant secret API keys.
//
// Keys are never stored in clear text: the merchant store holds the keyed
// BLAKE2b-256 digest of each key, and authentication recomputes it from the
// presented header.
type APIKeyHasher struct {
	hashKey []byte
}

// NewAPIKeyHasher returns a hasher keyed with hashKey. BLAKE2b accepts keys
// of at most 64 bytes.
func NewAPIKeyHasher(hashKey string) (*APIKeyHasher, error) {
	if len(hashKey) > blake2b.Size {
		return nil, fmt.Errorf("api key hash key is longer than %d bytes", blake2b.Size)
	}
	return &APIKeyHasher{hashKey: []byte(hashKey)}, nil
}

// Hash returns the hex-encoded keyed digest of apiKey.
func (h *APIKeyHasher) Hash(apiKey string) string {
	return hex.EncodeToString(hashAPIKey([]byte(apiKey), h.hashKey))
}

func hashAPIKey(data, key []byte) []byte {
	// New256 fails only for keys longer than 64 bytes, rejected above
	hasher, err := blake2b.New256(key)
	if err != nil {
		panic(err)
	}
	hasher.Write(data)
	return hasher.Sum(nil)
}
