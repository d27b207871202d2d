package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors carry a user-facing message; see ValidationError.

	// Session token errors.
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrSessionExpired      = errors.New("session expired")
)

// ValidationError is a business-rule violation whose message is meant for
// the end user verbatim ("Passwords do not match.", "Title must be
// non-empty and less than 255 characters.", ...).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError wraps msg in a *ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// AsValidation reports whether err is a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
