package services

import (
	"context"
	"fmt"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

// LetterService manages unsent letters for one user at a time; every call
// takes the acting user's id and never sees anyone else's rows.
type LetterService struct {
	repos repomanager.Manager
}

func NewLetterService(repos repomanager.Manager) *LetterService {
	return &LetterService{repos: repos}
}

func (s *LetterService) List(ctx context.Context, userID int64) ([]*models.Letter, error) {
	letters, err := s.repos.Letters().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing letters: %w", err)
	}
	return letters, nil
}

func (s *LetterService) Get(ctx context.Context, id, userID int64) (*models.Letter, error) {
	letter, err := s.repos.Letters().Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return letter, nil
}

func (s *LetterService) Create(ctx context.Context, userID int64, title, content string) (*models.Letter, error) {
	letter := &models.Letter{UserID: userID, Title: title, Content: content}
	if err := letter.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repos.Letters().Create(ctx, letter)
	if err != nil {
		return nil, fmt.Errorf("error creating letter: %w", err)
	}
	return created, nil
}

// LetterPatch carries the optional fields of PATCH /letters/:id. Nil means
// "leave unchanged".
type LetterPatch struct {
	Title   *string
	Content *string
}

func (s *LetterService) Update(ctx context.Context, id, userID int64, patch LetterPatch) (*models.Letter, error) {
	letter, err := s.repos.Letters().Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		letter.Title = *patch.Title
	}
	if patch.Content != nil {
		letter.Content = *patch.Content
	}
	if err := letter.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repos.Letters().Update(ctx, letter)
	if err != nil {
		return nil, fmt.Errorf("error updating letter: %w", err)
	}
	return updated, nil
}

func (s *LetterService) Delete(ctx context.Context, id, userID int64) error {
	return s.repos.Letters().Delete(ctx, id, userID)
}
