package models

import (
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

// TimeCapsule is a message to the author's future self, sealed until OpenDate.
type TimeCapsule struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	OpenDate  time.Time `json:"open_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the message and that the capsule opens in the future,
// relative to now.
func (c *TimeCapsule) Validate(now time.Time) error {
	if c.Message == "" {
		return common.NewValidationError("Message cannot be empty.")
	}
	if !c.OpenDate.After(now) {
		return common.NewValidationError("Open date must be in the future.")
	}
	return nil
}
