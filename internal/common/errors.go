// Package common defines shared constants and sentinel errors used across
// the UserHub client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Session store errors.
	ErrNoSession = errors.New("no session")

	// Transport / server errors (generic flow control).
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Client-side validation errors; these block submission before any
	// network call is made.
	ErrValidation = errors.New("validation error")
)
