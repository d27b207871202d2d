// Package services contains the server-side business rules. Handlers stay
// thin; everything user-facing about validation and ownership lives here.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/auth"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

// UserService handles signup, login, and session-check lookups.
type UserService struct {
	repos repomanager.Manager
}

func NewUserService(repos repomanager.Manager) *UserService {
	return &UserService{repos: repos}
}

// SignupParams is what POST /signup carries.
type SignupParams struct {
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Signup validates the params, enforces uniqueness, and creates the account.
// Rule violations come back as *common.ValidationError with the exact
// user-facing message.
func (s *UserService) Signup(ctx context.Context, p SignupParams) (*models.User, error) {
	if p.Username == "" || p.Email == "" || p.Password == "" || p.PasswordConfirmation == "" {
		return nil, common.NewValidationError(
			"All fields are required: username, email, password, password confirmation.")
	}
	if p.Password != p.PasswordConfirmation {
		return nil, common.NewValidationError("Passwords do not match.")
	}
	if err := models.ValidateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := models.ValidateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := models.ValidatePassword(p.Password); err != nil {
		return nil, err
	}

	users := s.repos.Users()

	taken, err := users.UsernameTaken(ctx, p.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, common.NewValidationError("Username already taken.")
	}

	taken, err = users.EmailTaken(ctx, p.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return nil, common.NewValidationError("Email already in use.")
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: p.Username, Email: p.Email, PasswordHash: hash}
	created, err := users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login authenticates by username or email. Unknown identifiers and wrong
// passwords are indistinguishable to the caller: both are ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, common.NewValidationError(
			"Identifier (username or email) and password are required.")
	}

	user, err := s.repos.Users().GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrUnauthorized
	}

	return user, nil
}

// GetByID resolves a session's user id to the account it names.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repos.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}
