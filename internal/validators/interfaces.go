// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Validator is the single abstraction: it validates arbitrary values and
// optionally scopes validation to named fields. UserValidator covers the
// account request DTOs using the `validate` struct tags declared in models.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations return a sentinel from this package wrapped with the
// offending field name.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
