// Package notes stores Quiet Page free-writing entries, user-scoped.
package notes

import (
	"context"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type Repository interface {
	// ListByUser returns the user's notes, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]*models.UserNote, error)

	Get(ctx context.Context, id, userID int64) (*models.UserNote, error)

	// Create inserts the note and fills in ID and CreatedAt.
	Create(ctx context.Context, note *models.UserNote) (*models.UserNote, error)

	// Update persists the content of a note owned by note.UserID.
	Update(ctx context.Context, note *models.UserNote) (*models.UserNote, error)

	Delete(ctx context.Context, id, userID int64) error
}
