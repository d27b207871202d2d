// Package models defines the SoulSpace records and their field-level
// validation rules. Validation messages are user-facing and travel to the
// client verbatim inside {"errors": ...} bodies.
package models

import (
	"regexp"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// User is an account holder. PasswordHash never serializes.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidateUsername enforces the 3–80 character rule.
func ValidateUsername(username string) error {
	if username == "" {
		return common.NewValidationError("Username cannot be empty.")
	}
	if len(username) < 3 || len(username) > 80 {
		return common.NewValidationError("Username must be between 3 and 80 characters.")
	}
	return nil
}

// ValidateEmail enforces a basic shape check; uniqueness is the service's job.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return common.NewValidationError("Invalid email format.")
	}
	return nil
}

// ValidatePassword enforces the minimum length rule.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return common.NewValidationError("Password must be at least 6 characters long.")
	}
	return nil
}
