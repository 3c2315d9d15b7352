package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/footy-tipping/internal/service"
	"github.com/MKhiriev/footy-tipping/models"
)

// serve sends the request through the full router as a signed-in user when
// signedIn is set.
func serve(t *testing.T, h *Handler, m *handlerMocks, req *http.Request, signedIn bool) *httptest.ResponseRecorder {
	t.Helper()
	if signedIn {
		req.Header.Set("Authorization", "Bearer good-token")
		m.tokens.EXPECT().ValidateToken("good-token").Return(ann.ID, true)
		m.users.EXPECT().GetByID(gomock.Any(), ann.ID).Return(ann, nil)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestAuthenticateUser(t *testing.T) {
	h, m := newTestHandler(t)
	req := models.AuthenticateRequest{Username: "annl", Password: "p@ss"}
	resp := ann.AuthenticateResponse("signed-token")

	m.users.EXPECT().Authenticate(gomock.Any(), req).Return(resp, nil)

	rr := serve(t, h, m, newRequest(http.MethodPost, "/users/authenticate", `{"username":"annl","password":"p@ss"}`), false)

	require.Equal(t, http.StatusOK, rr.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, map[string]any{
		"id": float64(1), "firstName": "Ann", "lastName": "Lee", "username": "annl", "token": "signed-token",
	}, got)
}

func TestAuthenticateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "wrong password",
			body:       `{"username":"annl","password":"nope"}`,
			serviceErr: service.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Username or password is incorrect.",
		},
		{
			name:       "missing field",
			body:       `{"username":"annl"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("password: required")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data provided: password: required",
		},
		{
			name:       "broken json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.serviceErr != nil {
				m.users.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.AuthenticateResponse{}, tt.serviceErr)
			}

			rr := serve(t, h, m, newRequest(http.MethodPost, "/users/authenticate", tt.body), false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
		})
	}
}

func TestRegister(t *testing.T) {
	h, m := newTestHandler(t)
	req := models.RegisterRequest{FirstName: "Ann", LastName: "Lee", Username: "annl", Password: "p@ss"}

	m.users.EXPECT().Register(gomock.Any(), req).Return(nil)

	rr := serve(t, h, m, newRequest(http.MethodPost, "/users/register",
		`{"firstName":"Ann","lastName":"Lee","username":"annl","password":"p@ss"}`), false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Registration successful.", decodeMessage(t, rr))
}

func TestRegister_UsernameTaken(t *testing.T) {
	h, m := newTestHandler(t)

	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&service.UsernameTakenError{Username: "annl"})

	rr := serve(t, h, m, newRequest(http.MethodPost, "/users/register",
		`{"firstName":"Ann","lastName":"Lee","username":"annl","password":"p@ss"}`), false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Username annl is already taken.", decodeMessage(t, rr))
}

func TestGetAllUsers(t *testing.T) {
	bob := models.User{ID: 2, FirstName: "Bob", LastName: "Ray", Username: "bobr", PasswordHash: "secret-hash"}

	tests := []struct {
		name     string
		users    []models.User
		wantBody string
	}{
		{
			name:     "two users, hashes never serialised",
			users:    []models.User{ann, bob},
			wantBody: `[{"id":1,"firstName":"Ann","lastName":"Lee","username":"annl"},{"id":2,"firstName":"Bob","lastName":"Ray","username":"bobr"}]`,
		},
		{name: "empty table", users: nil, wantBody: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.users.EXPECT().GetAll(gomock.Any()).Return(tt.users, nil)

			rr := serve(t, h, m, newRequest(http.MethodGet, "/users", ""), true)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGetUserByID(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().GetByID(gomock.Any(), int64(2)).
		Return(models.User{ID: 2, FirstName: "Bob", LastName: "Ray", Username: "bobr"}, nil)

	rr := serve(t, h, m, newRequest(http.MethodGet, "/users/2", ""), true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":2,"firstName":"Bob","lastName":"Ray","username":"bobr"}`, rr.Body.String())
}

func TestGetUserByID_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().GetByID(gomock.Any(), int64(99)).Return(models.User{}, service.ErrUserNotFound)

	rr := serve(t, h, m, newRequest(http.MethodGet, "/users/99", ""), true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found.", decodeMessage(t, rr))
}

func TestUserIDParam_Invalid(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "1.5", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			h, m := newTestHandler(t)

			rr := serve(t, h, m, newRequest(http.MethodGet, "/users/"+id, ""), true)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "invalid user id", decodeMessage(t, rr))
		})
	}
}

func TestUpdateUser(t *testing.T) {
	h, m := newTestHandler(t)
	req := models.UpdateRequest{FirstName: "Anna", LastName: "Lee", Username: "annl"}

	m.users.EXPECT().Update(gomock.Any(), int64(1), req).Return(nil)

	rr := serve(t, h, m, newRequest(http.MethodPut, "/users/1", `{"firstName":"Anna","lastName":"Lee","username":"annl"}`), true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User updated successfully.", decodeMessage(t, rr))
}

func TestUpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"unknown user", service.ErrUserNotFound, http.StatusNotFound, "User not found."},
		{"username collision", &service.UsernameTakenError{Username: "bobr"}, http.StatusBadRequest, "Username bobr is already taken."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.users.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(tt.serviceErr)

			rr := serve(t, h, m, newRequest(http.MethodPut, "/users/5", `{"firstName":"A","lastName":"B","username":"bobr"}`), true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
		})
	}
}

func TestUpdateUser_BrokenJSON(t *testing.T) {
	h, m := newTestHandler(t)

	rr := serve(t, h, m, newRequest(http.MethodPut, "/users/1", `not json`), true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid data provided", decodeMessage(t, rr))
}

func TestDeleteUser(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)

	rr := serve(t, h, m, newRequest(http.MethodDelete, "/users/2", ""), true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User deleted successfully.", decodeMessage(t, rr))
}

func TestDeleteUser_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().Delete(gomock.Any(), int64(42)).Return(service.ErrUserNotFound)

	rr := serve(t, h, m, newRequest(http.MethodDelete, "/users/42", ""), true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found.", decodeMessage(t, rr))
}
