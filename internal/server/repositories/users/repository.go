// Package users stores account records.
package users

import (
	"context"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

// Repository is the persistence contract for users. Lookups that miss
// return common.ErrNotFound.
type Repository interface {
	// Create inserts the user and fills in ID and CreatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID fetches a user by primary key.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByIdentifier fetches a user whose username or email equals
	// identifier. Login uses it.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	// UsernameTaken and EmailTaken report case-insensitive existence,
	// ignoring the user with id exceptID (0 for none).
	UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
}
