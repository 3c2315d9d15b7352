// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the footy-tipping server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/footy-tipping/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// footy-tipping server. Implementations are responsible for serialisation,
// bearer token management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. An empty token sends requests anonymously.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none is held.
	Token() string

	// Register creates an account. It does not sign the user in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Authenticate exchanges credentials for a bearer token. On success the
	// token is stored via SetToken and the response is returned.
	Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthenticateResponse, error)

	// GetAll lists every user.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID fetches one user.
	GetByID(ctx context.Context, id int64) (models.User, error)

	// Update overwrites the profile of user id.
	Update(ctx context.Context, id int64, req models.UpdateRequest) error

	// Delete removes user id.
	Delete(ctx context.Context, id int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
