package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

func requireValidationMessage(t *testing.T, err error, msg string) {
	t.Helper()
	ve, ok := common.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	require.Equal(t, msg, ve.Message)
}

func TestValidateUsername(t *testing.T) {
	require.NoError(t, ValidateUsername("ada"))
	requireValidationMessage(t, ValidateUsername(""), "Username cannot be empty.")
	requireValidationMessage(t, ValidateUsername("ab"), "Username must be between 3 and 80 characters.")
	long := make([]byte, 81)
	for i := range long {
		long[i] = 'a'
	}
	requireValidationMessage(t, ValidateUsername(string(long)), "Username must be between 3 and 80 characters.")
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("ada@example.com"))
	for _, bad := range []string{"", "nope", "a@b", "@example.com", "a@b@c.com"} {
		requireValidationMessage(t, ValidateEmail(bad), "Invalid email format.")
	}
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("secret"))
	requireValidationMessage(t, ValidatePassword("12345"), "Password must be at least 6 characters long.")
}

func TestLetterValidate(t *testing.T) {
	l := &Letter{Title: "To nobody", Content: "words"}
	require.NoError(t, l.Validate())

	requireValidationMessage(t, (&Letter{Content: "x"}).Validate(),
		"Title must be non-empty and less than 255 characters.")
	requireValidationMessage(t, (&Letter{Title: "t"}).Validate(),
		"Content cannot be empty.")
}

func TestTimeCapsuleValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ok := &TimeCapsule{Message: "hi future me", OpenDate: now.Add(24 * time.Hour)}
	require.NoError(t, ok.Validate(now))

	requireValidationMessage(t, (&TimeCapsule{OpenDate: now.Add(time.Hour)}).Validate(now),
		"Message cannot be empty.")
	requireValidationMessage(t, (&TimeCapsule{Message: "m", OpenDate: now}).Validate(now),
		"Open date must be in the future.")
	requireValidationMessage(t, (&TimeCapsule{Message: "m", OpenDate: now.Add(-time.Minute)}).Validate(now),
		"Open date must be in the future.")
}

func TestUserNoteValidate(t *testing.T) {
	require.NoError(t, (&UserNote{Content: "quiet"}).Validate())
	requireValidationMessage(t, (&UserNote{}).Validate(), "Note content cannot be empty.")
}
