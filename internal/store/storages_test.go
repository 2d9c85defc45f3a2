// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/models"
)

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{Driver: "oracle", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

// TestNewStorages_SQLiteRoundTrip runs the repositories against a migrated
// on-disk SQLite database.
func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "payouts.db")

	s, err := NewStorages(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Ping(ctx))

	_, err = s.db.ExecContext(ctx, `INSERT INTO merchant_accounts
		(merchant_id, name, api_key_hash, publishable_key, payouts_enabled, enabled_currencies, is_active)
		VALUES ('mer_1', 'Acme', 'hash_1', 'pk_test_1', TRUE, 'USD,EUR', TRUE)`)
	require.NoError(t, err)

	// merchants
	merchant, err := s.MerchantRepository.FindByAPIKeyHash(ctx, "hash_1")
	require.NoError(t, err)
	assert.Equal(t, "mer_1", merchant.MerchantID)
	assert.True(t, merchant.PayoutsEnabled)
	assert.Equal(t, []string{"USD", "EUR"}, merchant.EnabledCurrencies)

	byKey, err := s.MerchantRepository.FindByPublishableKey(ctx, "pk_test_1")
	require.NoError(t, err)
	assert.Equal(t, merchant.MerchantID, byKey.MerchantID)

	_, err = s.MerchantRepository.FindByID(ctx, "mer_missing")
	assert.ErrorIs(t, err, ErrMerchantNotFound)

	// payouts
	payout := models.Payout{
		PayoutID:    "po_1",
		MerchantID:  "mer_1",
		Amount:      1000,
		Currency:    "USD",
		Destination: "acct_1",
		Connector:   "wise",
		Status:      models.PayoutStatusRequiresFulfillment,
		AuthFlow:    models.AuthFlowMerchant,
		CreatedAt:   time.Now().UTC(),
	}

	exists, err := s.PayoutRepository.Exists(ctx, "mer_1", "po_1")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.PayoutRepository.Create(ctx, payout)
	require.NoError(t, err)

	exists, err = s.PayoutRepository.Exists(ctx, "mer_1", "po_1")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = s.PayoutRepository.Create(ctx, payout)
	assert.ErrorIs(t, err, ErrDuplicatePayout)
}
