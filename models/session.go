// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the client-side record of a signed-in user: the public user
// fields and the bearer token replayed on every authenticated call.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// IsEmpty reports whether the session holds no token.
func (s Session) IsEmpty() bool {
	return s.Token == ""
}
