// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG",

	"APP_API_KEY_HASH_KEY",
	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_LOG_LEVEL",
	"APP_VERSION",

	"SERVER_ADDRESS",
	"SERVER_GRPC_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",

	"PAYOUTS_DEFAULT_MAX_AMOUNT",
	"PAYOUTS_MAX_AMOUNTS",

	"WORKERS_HEALTH_CHECK_INTERVAL",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_API_KEY_HASH_KEY": "hash_secret",
		"APP_TOKEN_SIGN_KEY":   "jwt_secret",
		"APP_TOKEN_ISSUER":     "test_issuer",
		"APP_LOG_LEVEL":        "info",
		"APP_VERSION":          "1.4.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":       "sqlite",
		"STORAGE_DB_DATABASE_URI": "file:payouts.db",

		"PAYOUTS_DEFAULT_MAX_AMOUNT": "2500",
		"PAYOUTS_MAX_AMOUNTS":        "USD:10000,EUR:9000.50",

		"WORKERS_HEALTH_CHECK_INTERVAL": "15s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "hash_secret", cfg.App.APIKeyHashKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:payouts.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "2500", cfg.Payouts.DefaultMaxAmount)
	assert.Equal(t, map[string]string{"USD": "10000", "EUR": "9000.50"}, cfg.Payouts.MaxAmounts)

	assert.Equal(t, 15*time.Second, cfg.Workers.HealthCheckInterval)
	assert.Empty(t, cfg.Connectors)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.APIKeyHashKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_HEALTH_CHECK_INTERVAL": "invalid_duration",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		// t.Setenv registers the restore, Unsetenv removes the key
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
