// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/models"
)

// payoutRepository is the SQL implementation of [PayoutRepository] over the
// "payouts" table.
type payoutRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPayoutRepository(db *DB, logger *logger.Logger) PayoutRepository {
	logger.Debug().Msg("creating payout repository")
	return &payoutRepository{
		db:     db,
		logger: logger,
	}
}

func (r *payoutRepository) Exists(ctx context.Context, merchantID, payoutID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("1").
		From("payouts").
		Where(sq.Eq{"merchant_id": merchantID, "payout_id": payoutID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*payoutRepository.Exists").Msg("error executing query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// Create inserts the payout inside a transaction. The context is checked
// once more right before commit so that a request abandoned by its caller
// never leaves a stored payout behind.
func (r *payoutRepository) Create(ctx context.Context, payout models.Payout) (models.Payout, error) {
	log := logger.FromContext(ctx).WithField("func", "*payoutRepository.Create")

	metadata, err := json.Marshal(payoutMetadata(payout.Metadata))
	if err != nil {
		return models.Payout{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.db.builder.
		Insert("payouts").
		Columns(
			"merchant_id",
			"payout_id",
			"amount",
			"currency",
			"destination",
			"destination_country",
			"description",
			"metadata",
			"connector",
			"status",
			"auth_flow",
			"created_at",
		).
		Values(
			payout.MerchantID,
			payout.PayoutID,
			payout.Amount,
			payout.Currency,
			payout.Destination,
			payout.Country,
			payout.Description,
			string(metadata),
			payout.Connector,
			string(payout.Status),
			string(payout.AuthFlow),
			payout.CreatedAt,
		).
		ToSql()
	if err != nil {
		return models.Payout{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.Payout{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Msg("error rolling back transaction")
		}
	}()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Payout{}, ErrDuplicatePayout
		}
		log.Err(err).Msg("error inserting payout")
		return models.Payout{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Payout{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Payout{}, ErrPayoutNotSaved
	}

	if err = ctx.Err(); err != nil {
		log.Warn().Err(err).Str("payout_id", payout.PayoutID).Msg("request cancelled before commit, rolling back")
		return models.Payout{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return models.Payout{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return payout, nil
}

func payoutMetadata(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
