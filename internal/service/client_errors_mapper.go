// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/footy-tipping/internal/adapter"
	"github.com/MKhiriev/footy-tipping/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case msg == ErrInvalidCredentials.Error():
			return ErrInvalidCredentials
		case strings.HasPrefix(msg, app.MsgUsernameTakenPrefix) && strings.HasSuffix(msg, app.MsgUsernameTakenSuffix):
			username := strings.TrimSuffix(strings.TrimPrefix(msg, app.MsgUsernameTakenPrefix), app.MsgUsernameTakenSuffix)
			return usernameTaken(username)
		case strings.HasPrefix(msg, app.MsgInvalidDataProvided), msg == app.MsgInvalidUserID:
			detail := strings.TrimPrefix(strings.TrimPrefix(msg, app.MsgInvalidDataProvided), ": ")
			if detail == "" {
				return ErrInvalidDataProvided
			}
			return fmt.Errorf("%w: %s", ErrInvalidDataProvided, detail)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		if msg == ErrUserNotFound.Error() {
			return ErrUserNotFound
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
