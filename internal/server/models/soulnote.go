package models

import "github.com/Algo-jtx/SoulSpace/internal/common"

// SoulNote is a short comforting thought served at random. Not user-owned.
type SoulNote struct {
	ID       int64  `json:"id"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
}

func (s *SoulNote) Validate() error {
	if s.Message == "" || len(s.Message) > 500 {
		return common.NewValidationError("Message must be non-empty and less than 500 characters.")
	}
	return nil
}
