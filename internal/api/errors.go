package api

import (
	"errors"
	"fmt"
)

// APIError is a request the server rejected with a 4xx/5xx status. Message
// carries the server's "message" field when present, else the HTTP status
// text as a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

// ServerMessage extracts the user-facing message from an API error chain.
// Returns fallback when err carries no server message.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
