package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrEmptyMessage     = errors.New("message text is empty")
	ErrNotAuthenticated = errors.New("authentication required")
	ErrGoalNotSet       = errors.New("no goal set")
	ErrValidation       = errors.New("validation failed")
)

// Validation wraps ErrValidation with a human-readable reason so the caller
// can show it inline and tests can match with errors.Is.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// APIError carries a non-2xx backend response. Detail is the server-provided
// message ({"detail": ...}) when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}
