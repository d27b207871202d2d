package capsules

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	capsules map[int64]*models.TimeCapsule
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, capsules: make(map[int64]*models.TimeCapsule)}
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID int64) ([]*models.TimeCapsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.TimeCapsule, 0)
	for _, c := range r.capsules {
		if c.UserID == userID {
			out := *c
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

func (r *InMemoryRepository) Get(_ context.Context, id, userID int64) (*models.TimeCapsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.capsules[id]
	if !ok || c.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *InMemoryRepository) Create(_ context.Context, capsule *models.TimeCapsule) (*models.TimeCapsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *capsule
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.nextID++
	r.capsules[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Update(_ context.Context, capsule *models.TimeCapsule) (*models.TimeCapsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.capsules[capsule.ID]
	if !ok || existing.UserID != capsule.UserID {
		return nil, common.ErrNotFound
	}
	existing.Message = capsule.Message
	existing.OpenDate = capsule.OpenDate

	out := *existing
	return &out, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.capsules[id]
	if !ok || c.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.capsules, id)
	return nil
}
