// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// footy-tipping server handlers and the client.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of HTTP response bodies. Keeping them in one place
// ensures the server and the client agree on the wording.
package app

const (
	// MsgUnauthorized is returned when a route that requires a signed-in
	// user is called without a valid bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidDataProvided prefixes validation failures and is returned
	// alone when the request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidUserID = "invalid user id"

	// MsgNotFound is returned for unknown routes and for methods a route
	// does not serve.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned when a handler panics.
	MsgInternalServerError = "internal server error"

	// MsgUsernameTakenPrefix and MsgUsernameTakenSuffix frame the
	// "Username X is already taken." message.
	MsgUsernameTakenPrefix = "Username "
	MsgUsernameTakenSuffix = " is already taken."
)
