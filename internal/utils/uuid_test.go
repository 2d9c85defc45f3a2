// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Prefix(t *testing.T) {
	id := NewUUIDGenerator("po_").Generate()

	if !strings.HasPrefix(id, "po_") {
		t.Fatalf("expected po_ prefix, got %s", id)
	}
	parsed, err := uuid.Parse(strings.TrimPrefix(id, "po_"))
	if err != nil {
		t.Fatalf("expected a valid uuid, got %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator("")
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := g.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
