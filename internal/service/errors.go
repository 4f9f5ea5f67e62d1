package service

import (
	"errors"
	"net/http"
)

// APIError is the single error shape surfaced for any failed backend
// operation. Message is either the server-supplied error field or an
// operation-specific default; StatusCode is zero when no response was
// received (transport failure).
type APIError struct {
	Op         string // operation name, e.g. "create task"
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError for a rejected or
// expired session token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}
