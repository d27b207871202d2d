package notes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	notes  map[int64]*models.UserNote
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, notes: make(map[int64]*models.UserNote)}
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID int64) ([]*models.UserNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.UserNote, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			out := *n
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id, userID int64) (*models.UserNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *n
	return &out, nil
}

func (r *InMemoryRepository) Create(_ context.Context, note *models.UserNote) (*models.UserNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *note
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.nextID++
	r.notes[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Update(_ context.Context, note *models.UserNote) (*models.UserNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.notes[note.ID]
	if !ok || existing.UserID != note.UserID {
		return nil, common.ErrNotFound
	}
	existing.Content = note.Content

	out := *existing
	return &out, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}
