package models

import (
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

// Letter is an unsent letter: something written to be said, not sent.
type Letter struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Letter) Validate() error {
	if l.Title == "" || len(l.Title) > 255 {
		return common.NewValidationError("Title must be non-empty and less than 255 characters.")
	}
	if l.Content == "" {
		return common.NewValidationError("Content cannot be empty.")
	}
	return nil
}
