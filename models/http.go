// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthenticateRequest carries the credentials submitted to POST /users/authenticate.
type AuthenticateRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries the account data submitted to POST /users/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Username  string `json:"username" validate:"required,max=50"`
	Password  string `json:"password" validate:"required,max=72"`
}

// UpdateRequest carries the account data submitted to PUT /users/{id}.
//
// Name fields and Username always overwrite the stored values.
// Password is optional: when empty the stored hash is preserved.
type UpdateRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Username  string `json:"username" validate:"required,max=50"`
	Password  string `json:"password,omitempty" validate:"omitempty,max=72"`
}

// User returns the user record described by the registration request.
// PasswordHash is left empty; hashing is the service's job.
func (r RegisterRequest) User() User {
	return User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Username:  r.Username,
	}
}

// Apply overwrites the name and username fields of user with the request values.
func (r UpdateRequest) Apply(user *User) {
	user.FirstName = r.FirstName
	user.LastName = r.LastName
	user.Username = r.Username
}
