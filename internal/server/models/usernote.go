package models

import (
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

// UserNote is a free-writing entry from the Quiet Page.
type UserNote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *UserNote) Validate() error {
	if n.Content == "" {
		return common.NewValidationError("Note content cannot be empty.")
	}
	return nil
}
