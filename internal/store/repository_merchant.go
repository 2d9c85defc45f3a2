// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/models"
)

var merchantColumns = []string{
	"merchant_id",
	"name",
	"api_key_hash",
	"publishable_key",
	"payouts_enabled",
	"enabled_currencies",
	"is_active",
	"created_at",
}

// merchantRepository is the SQL implementation of [MerchantRepository] over
// the "merchant_accounts" table.
type merchantRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMerchantRepository(db *DB, logger *logger.Logger) MerchantRepository {
	logger.Debug().Msg("creating merchant repository")
	return &merchantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *merchantRepository) FindByAPIKeyHash(ctx context.Context, apiKeyHash string) (models.MerchantAccount, error) {
	return r.findOne(ctx, "*merchantRepository.FindByAPIKeyHash", sq.Eq{"api_key_hash": apiKeyHash})
}

func (r *merchantRepository) FindByPublishableKey(ctx context.Context, publishableKey string) (models.MerchantAccount, error) {
	return r.findOne(ctx, "*merchantRepository.FindByPublishableKey", sq.Eq{"publishable_key": publishableKey})
}

func (r *merchantRepository) FindByID(ctx context.Context, merchantID string) (models.MerchantAccount, error) {
	return r.findOne(ctx, "*merchantRepository.FindByID", sq.Eq{"merchant_id": merchantID})
}

func (r *merchantRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.MerchantAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(merchantColumns...).
		From("merchant_accounts").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error building query")
		return models.MerchantAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		merchant   models.MerchantAccount
		currencies string
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&merchant.MerchantID,
			&merchant.Name,
			&merchant.APIKeyHash,
			&merchant.PublishableKey,
			&merchant.PayoutsEnabled,
			&currencies,
			&merchant.IsActive,
			&merchant.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.MerchantAccount{}, ErrMerchantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return models.MerchantAccount{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	merchant.EnabledCurrencies = splitCurrencies(currencies)
	return merchant, nil
}

// splitCurrencies parses the comma separated enabled_currencies column.
func splitCurrencies(column string) []string {
	if strings.TrimSpace(column) == "" {
		return nil
	}
	parts := strings.Split(column, ",")
	currencies := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			currencies = append(currencies, p)
		}
	}
	return currencies
}
