// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	// It is assigned by the store on insert.
	ID int64 `json:"id"`

	// FirstName is the given name of the user (up to 50 characters).
	FirstName string `json:"firstName"`

	// LastName is the family name of the user (up to 50 characters).
	LastName string `json:"lastName"`

	// Username is the unique login of the user. Comparison is case-sensitive.
	Username string `json:"username"`

	// PasswordHash is the self-describing bcrypt hash of the user's password.
	// It is never serialized outward.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthenticateResponse builds the public view of u extended with a freshly
// issued bearer token.
func (u User) AuthenticateResponse(token string) AuthenticateResponse {
	return AuthenticateResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Token:     token,
	}
}
