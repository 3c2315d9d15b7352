package service

import (
	"errors"

	"github.com/MKhiriev/footy-tipping/internal/app"
)

// User-facing errors. Their text is written verbatim into response bodies.
var (
	ErrInvalidCredentials = errors.New("Username or password is incorrect.")
	ErrUserNotFound       = errors.New("User not found.")
	ErrUsernameTaken      = errors.New("username is already taken")

	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// UsernameTakenError reports that a username is already held by another
// account. It matches [ErrUsernameTaken] with errors.Is.
type UsernameTakenError struct {
	Username string
}

func (e *UsernameTakenError) Error() string {
	return app.MsgUsernameTakenPrefix + e.Username + app.MsgUsernameTakenSuffix
}

func (e *UsernameTakenError) Is(target error) bool {
	return target == ErrUsernameTaken
}

func usernameTaken(username string) error {
	return &UsernameTakenError{Username: username}
}
