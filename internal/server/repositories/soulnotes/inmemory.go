package soulnotes

import (
	"context"
	"math/rand"
	"sync"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	notes []*models.SoulNote
}

func NewInMemoryRepository(notes []*models.SoulNote) *InMemoryRepository {
	return &InMemoryRepository{notes: notes}
}

func (r *InMemoryRepository) Random(_ context.Context) (*models.SoulNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.notes) == 0 {
		return nil, common.ErrNotFound
	}
	out := *r.notes[rand.Intn(len(r.notes))]
	return &out, nil
}
