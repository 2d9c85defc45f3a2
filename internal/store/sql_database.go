// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/migrations"
)

const (
	maxReadAttempts  = 3
	readRetryBackoff = 50 * time.Millisecond
)

// DB wraps a database/sql connection with a dialect-aware query builder and
// the error classifier of its driver.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs read until it succeeds, fails with a non-retryable error,
// or the attempts are exhausted. Waits between attempts honour ctx.
func (db *DB) withRetry(ctx context.Context, read func() error) error {
	var err error
	for attempt := 1; attempt <= maxReadAttempts; attempt++ {
		err = read()
		if err == nil || errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * readRetryBackoff):
		}
	}
	return err
}
