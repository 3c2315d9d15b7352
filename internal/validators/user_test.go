// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/footy-tipping/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{FirstName: "Ann", LastName: "Lee", Username: "annl", Password: "p@ss"}
}

func validUpdateRequest() models.UpdateRequest {
	return models.UpdateRequest{FirstName: "Ann", LastName: "Lee", Username: "annl"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.RegisterRequest)(nil)), ErrUnsupportedType)
}

func TestValidate_Pointers(t *testing.T) {
	v := NewUserValidator()
	req := validRegisterRequest()

	assert.NoError(t, v.Validate(context.Background(), &req))

	req.Username = ""
	assert.ErrorIs(t, v.Validate(context.Background(), &req), ErrRequiredField)
}

// ---------------------------------------------------------------------------
// User id
// ---------------------------------------------------------------------------

func TestValidate_UserID(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), int64(1)))
	assert.ErrorIs(t, v.Validate(context.Background(), int64(0)), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(context.Background(), int64(-5)), ErrInvalidUserID)
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

func TestValidate_AuthenticateRequest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		req     models.AuthenticateRequest
		wantErr error
		field   string
	}{
		{name: "valid", req: models.AuthenticateRequest{Username: "annl", Password: "p@ss"}},
		{name: "missing username", req: models.AuthenticateRequest{Password: "p@ss"}, wantErr: ErrRequiredField, field: "username"},
		{name: "missing password", req: models.AuthenticateRequest{Username: "annl"}, wantErr: ErrRequiredField, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
		field   string
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "missing first name", mutate: func(r *models.RegisterRequest) { r.FirstName = "" }, wantErr: ErrRequiredField, field: "firstName"},
		{name: "missing last name", mutate: func(r *models.RegisterRequest) { r.LastName = "" }, wantErr: ErrRequiredField, field: "lastName"},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: ErrRequiredField, field: "password"},
		{name: "username too long", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("u", 51) }, wantErr: ErrFieldTooLong, field: "username"},
		{name: "username at limit", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("u", 50) }},
		{name: "password too long", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: ErrFieldTooLong, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_UpdateRequest_PasswordOptional(t *testing.T) {
	v := NewUserValidator()

	req := validUpdateRequest()
	assert.NoError(t, v.Validate(context.Background(), req))

	req.Password = "new-pass"
	assert.NoError(t, v.Validate(context.Background(), req))

	req.Password = strings.Repeat("p", 73)
	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrFieldTooLong)
}

// ---------------------------------------------------------------------------
// Field scoping
// ---------------------------------------------------------------------------

func TestValidate_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	req := models.RegisterRequest{Username: "annl"}

	assert.NoError(t, v.Validate(context.Background(), req, "Username"))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "Username", "Password"), ErrRequiredField)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "Nickname"), ErrUnknownField)
}
