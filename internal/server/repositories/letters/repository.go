// Package letters stores unsent letters. All operations are scoped to the
// owning user; an id belonging to someone else behaves as missing.
package letters

import (
	"context"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type Repository interface {
	// ListByUser returns the user's letters, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]*models.Letter, error)

	// Get fetches one letter owned by userID, or common.ErrNotFound.
	Get(ctx context.Context, id, userID int64) (*models.Letter, error)

	// Create inserts the letter and fills in ID and CreatedAt.
	Create(ctx context.Context, letter *models.Letter) (*models.Letter, error)

	// Update persists title/content of a letter owned by letter.UserID.
	Update(ctx context.Context, letter *models.Letter) (*models.Letter, error)

	// Delete removes a letter owned by userID, or common.ErrNotFound.
	Delete(ctx context.Context, id, userID int64) error
}
