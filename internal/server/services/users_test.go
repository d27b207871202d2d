package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

func validSignup() SignupParams {
	return SignupParams{
		Username:             "maya",
		Email:                "maya@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}
}

func TestUserServiceSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and hashes password", func(t *testing.T) {
		svc := NewUserService(repomanager.NewInMemoryManager())
		user, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)
		require.NotZero(t, user.ID)
		require.Equal(t, "maya", user.Username)
		require.NotEmpty(t, user.PasswordHash)
		require.NotEqual(t, "secret1", user.PasswordHash)
		require.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name    string
		mutate  func(*SignupParams)
		message string
	}{
		{
			name:    "missing field",
			mutate:  func(p *SignupParams) { p.Email = "" },
			message: "All fields are required: username, email, password, password confirmation.",
		},
		{
			name:    "password mismatch",
			mutate:  func(p *SignupParams) { p.PasswordConfirmation = "other" },
			message: "Passwords do not match.",
		},
		{
			name:    "short username",
			mutate:  func(p *SignupParams) { p.Username = "ab" },
			message: "Username must be between 3 and 80 characters.",
		},
		{
			name:    "bad email",
			mutate:  func(p *SignupParams) { p.Email = "not-an-email" },
			message: "Invalid email format.",
		},
		{
			name:    "short password",
			mutate:  func(p *SignupParams) { p.Password = "abc"; p.PasswordConfirmation = "abc" },
			message: "Password must be at least 6 characters long.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(repomanager.NewInMemoryManager())
			p := validSignup()
			tt.mutate(&p)
			_, err := svc.Signup(ctx, p)
			ve, ok := common.AsValidation(err)
			require.True(t, ok, "expected validation error, got %v", err)
			require.Equal(t, tt.message, ve.Error())
		})
	}

	t.Run("duplicate username is case-insensitive", func(t *testing.T) {
		svc := NewUserService(repomanager.NewInMemoryManager())
		_, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)

		p := validSignup()
		p.Username = "MAYA"
		p.Email = "other@example.com"
		_, err = svc.Signup(ctx, p)
		ve, ok := common.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Username already taken.", ve.Error())
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewUserService(repomanager.NewInMemoryManager())
		_, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)

		p := validSignup()
		p.Username = "someoneelse"
		_, err = svc.Signup(ctx, p)
		ve, ok := common.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Email already in use.", ve.Error())
	})
}

func TestUserServiceLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repomanager.NewInMemoryManager())
	created, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Login(ctx, "maya", "secret1")
		require.NoError(t, err)
		require.Equal(t, created.ID, user.ID)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := svc.Login(ctx, "maya@example.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "maya", "wrong")
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "secret1")
		require.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("empty fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		_, ok := common.AsValidation(err)
		require.True(t, ok)
	})
}
