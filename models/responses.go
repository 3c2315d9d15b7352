// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthenticateResponse is returned by a successful authentication.
// It carries the user's public fields and the freshly issued bearer token.
type AuthenticateResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Token     string `json:"token"`
}

// User returns the public user fields of the response.
func (r AuthenticateResponse) User() User {
	return User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Username:  r.Username,
	}
}

// MessageResponse is the body of every acknowledgement and error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// Acknowledgement messages written by the HTTP layer.
const (
	MessageRegistrationSuccessful = "Registration successful."
	MessageUserUpdated            = "User updated successfully."
	MessageUserDeleted            = "User deleted successfully."
)
