package letters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	letters map[int64]*models.Letter
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, letters: make(map[int64]*models.Letter)}
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID int64) ([]*models.Letter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Letter, 0)
	for _, l := range r.letters {
		if l.UserID == userID {
			out := *l
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

func (r *InMemoryRepository) Get(_ context.Context, id, userID int64) (*models.Letter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.letters[id]
	if !ok || l.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *l
	return &out, nil
}

func (r *InMemoryRepository) Create(_ context.Context, letter *models.Letter) (*models.Letter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *letter
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.nextID++
	r.letters[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Update(_ context.Context, letter *models.Letter) (*models.Letter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.letters[letter.ID]
	if !ok || existing.UserID != letter.UserID {
		return nil, common.ErrNotFound
	}
	existing.Title = letter.Title
	existing.Content = letter.Content

	out := *existing
	return &out, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.letters[id]
	if !ok || l.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.letters, id)
	return nil
}
