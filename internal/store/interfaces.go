// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/footy-tipping/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserRepository persists user accounts.
//
// Lookups by username are case-sensitive. Methods return [ErrNoUserWasFound]
// when the addressed user does not exist and [ErrLoginAlreadyExists] when a
// write would violate username uniqueness.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// FindUserByUsername returns the user with exactly this username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateUser overwrites every column of the row identified by user.ID.
	UpdateUser(ctx context.Context, user models.User) error
	// DeleteUser removes the row with the given id.
	DeleteUser(ctx context.Context, id int64) error
	// GetAllUsers returns every user ordered by ID.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// Transactor runs units of work atomically.
type Transactor interface {
	// WithinTransaction begins a transaction and calls fn with a repository
	// bound to it. The transaction commits when fn returns nil and rolls
	// back when fn returns an error or panics. A transaction that fails with
	// a retryable database error is run again from the start.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

// ErrorClassificator tells apart transient and permanent driver errors.
type ErrorClassificator interface {
	// Classify reports whether the operation that produced err may succeed
	// if attempted again.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
