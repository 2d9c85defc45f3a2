// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	tokenString, err := GenerateJWTToken("test-issuer", "mer_123", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if tokenString == "" {
		t.Fatal("expected non-empty token")
	}

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		t.Fatalf("could not parse generated token: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "mer_123" {
		t.Errorf("expected subject 'mer_123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		issuer     string
		merchantID string
		duration   time.Duration
		key        string
	}{
		{"empty issuer", "", "mer", time.Hour, "key"},
		{"empty merchant", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "mer", 0, "key"},
		{"empty key", "iss", "mer", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.merchantID, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	tokenString, _ := GenerateJWTToken("dashboard", "mer_42", time.Hour, "key")

	merchantID, err := ValidateAndParseJWTToken(tokenString, "key", "dashboard")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if merchantID != "mer_42" {
		t.Errorf("expected mer_42, got %s", merchantID)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken("dashboard", "mer_42", time.Hour, "key")
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "dashboard",
		Subject:   "mer_42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("key"))
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "dashboard",
		Subject: "mer_42",
	}).SignedString([]byte("key"))
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "dashboard",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid, "other", "dashboard"},
		{"wrong issuer", valid, "key", "someone-else"},
		{"expired", expired, "key", "dashboard"},
		{"no expiry", noExpiry, "key", "dashboard"},
		{"no subject", noSubject, "key", "dashboard"},
		{"malformed", "not.a.jwt", "key", "dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer abc.def", want: "abc.def"},
		{header: "  Bearer   abc.def ", want: "abc.def"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
