package services

import (
	"context"
	"fmt"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

// NoteService manages quick personal notes.
type NoteService struct {
	repos repomanager.Manager
}

func NewNoteService(repos repomanager.Manager) *NoteService {
	return &NoteService{repos: repos}
}

func (s *NoteService) List(ctx context.Context, userID int64) ([]*models.UserNote, error) {
	notes, err := s.repos.Notes().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, id, userID int64) (*models.UserNote, error) {
	note, err := s.repos.Notes().Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Create(ctx context.Context, userID int64, content string) (*models.UserNote, error) {
	note := &models.UserNote{UserID: userID, Content: content}
	if err := note.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repos.Notes().Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating user note: %w", err)
	}
	return created, nil
}

// NotePatch holds the updatable note fields. Nil means leave unchanged.
type NotePatch struct {
	Content *string
}

func (s *NoteService) Update(ctx context.Context, id, userID int64, patch NotePatch) (*models.UserNote, error) {
	note, err := s.repos.Notes().Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if err := note.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repos.Notes().Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error updating user note: %w", err)
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id, userID int64) error {
	return s.repos.Notes().Delete(ctx, id, userID)
}
