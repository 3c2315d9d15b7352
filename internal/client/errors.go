// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/footy-tipping/internal/service"
)

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
	ErrAborted        = errors.New("aborted")
)

// HumanizeError turns err into a line suitable for the terminal.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return "You are not signed in. Run `login` first."
	case errors.Is(err, service.ErrSessionExpired):
		return "Your session has expired. Run `login` to sign in again."
	case isServerUnavailable(err):
		return "The server is unavailable or the network is down."
	}

	return err.Error()
}

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
