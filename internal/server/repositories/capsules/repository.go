// Package capsules stores time capsules, user-scoped like letters.
package capsules

import (
	"context"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type Repository interface {
	// ListByUser returns the user's capsules, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]*models.TimeCapsule, error)

	Get(ctx context.Context, id, userID int64) (*models.TimeCapsule, error)

	// Create inserts the capsule and fills in ID and CreatedAt.
	Create(ctx context.Context, capsule *models.TimeCapsule) (*models.TimeCapsule, error)

	// Update persists message/open_date of a capsule owned by capsule.UserID.
	Update(ctx context.Context, capsule *models.TimeCapsule) (*models.TimeCapsule, error)

	Delete(ctx context.Context, id, userID int64) error
}
