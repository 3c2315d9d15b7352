// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace ids,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/footy-tipping/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authenticated user of a
// request is stored in the context.
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user as the authenticated
// caller of the request.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// CurrentUserFromContext retrieves the authenticated user from the context.
//
// ok is false when the request carried no valid identity.
//
// Example usage:
//
//	user, ok := utils.CurrentUserFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext returns the id of the authenticated user, if any.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := CurrentUserFromContext(ctx)
	return user.ID, ok
}
