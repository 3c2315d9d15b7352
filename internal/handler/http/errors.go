// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/footy-tipping/internal/app"
)

var (
	// ErrUnauthorized is written by requireUser when the request carries no
	// valid identity.
	ErrUnauthorized = errors.New(app.MsgUnauthorized)

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// positive base-10 integer.
	ErrInvalidUserID = errors.New(app.MsgInvalidUserID)

	// ErrRouteNotFound is written for unknown routes and unsupported methods.
	ErrRouteNotFound = errors.New(app.MsgNotFound)
)
