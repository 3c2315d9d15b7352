// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/footy-tipping/internal/logger"
)

// transactor is the database/sql implementation of [Transactor].
type transactor struct {
	db *DB
}

// NewTransactor returns a [Transactor] over db.
func NewTransactor(db *DB) Transactor {
	return &transactor{db: db}
}

// WithinTransaction implements [Transactor]. Retryable failures are
// attempted again after each of the configured retry intervals.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	log := logger.FromContext(ctx)

	err := t.runInTx(ctx, fn)
	for attempt, interval := range t.db.retryIntervals {
		if err == nil || t.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*transactor.WithinTransaction").
			Int("attempt", attempt+1).
			Dur("retry_in", interval).
			Msg("retryable database error, retrying transaction")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (retry aborted: %w)", err, ctx.Err())
		case <-time.After(interval):
		}

		err = t.runInTx(ctx, fn)
	}

	return err
}

// runInTx commits on success and rolls back on error or panic. Panics are
// rethrown after the rollback.
func (t *transactor) runInTx(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactor.runInTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, newUserRepository(tx, t.db.builder(), t.db.errorClassificator))
}
