// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every bearer token.
//
// UserID holds the user identifier in the custom "id" claim; it is a decimal
// string so that tokens stay readable by clients that treat claim values as
// strings. RegisteredClaims carries exp, iat and nbf.
type Claims struct {
	UserID string `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// GetUserID parses the "id" claim as a base-10 int64.
//
// Returns an error if the claim is missing, empty, or cannot be
// converted to int64.
func (c *Claims) GetUserID() (int64, error) {
	if c.UserID == "" {
		return 0, errors.New("empty id claim")
	}

	userID, err := strconv.ParseInt(c.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting id claim to int64: %w", err)
	}

	return userID, nil
}

// Token wraps a signed bearer token with the values extracted from it.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier carried in the "id" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
