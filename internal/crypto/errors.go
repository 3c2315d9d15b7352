package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when hashing an empty plaintext.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrPasswordTooLong is returned for plaintexts bcrypt cannot hash in full.
	ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")
)
