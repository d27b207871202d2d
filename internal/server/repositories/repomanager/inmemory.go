package repomanager

import (
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/capsules"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/letters"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/notes"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/soulnotes"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/users"
)

// InMemoryManager backs dev mode and handler tests. The soul-note pool
// mirrors the migration seed so /soul_notes/random works without Postgres.
type InMemoryManager struct {
	users     *users.InMemoryRepository
	letters   *letters.InMemoryRepository
	capsules  *capsules.InMemoryRepository
	notes     *notes.InMemoryRepository
	soulNotes *soulnotes.InMemoryRepository
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{
		users:     users.NewInMemoryRepository(),
		letters:   letters.NewInMemoryRepository(),
		capsules:  capsules.NewInMemoryRepository(),
		notes:     notes.NewInMemoryRepository(),
		soulNotes: soulnotes.NewInMemoryRepository(seedSoulNotes()),
	}
}

func seedSoulNotes() []*models.SoulNote {
	messages := []struct{ message, category string }{
		{"You are allowed to take up space.", "affirmation"},
		{"This feeling is a visitor, not a resident.", "perspective"},
		{"Rest is productive too.", "self-care"},
		{"You have survived every hard day so far.", "resilience"},
		{"Small steps still move you forward.", "encouragement"},
		{"You don't have to earn your own kindness.", "self-compassion"},
		{"Breathe. You are exactly where you need to be right now.", "grounding"},
		{"Your worth is not measured by your output.", "perspective"},
		{"It's okay to not be okay today.", "acceptance"},
		{"Someone is glad you exist, even when you can't feel it.", "connection"},
	}

	out := make([]*models.SoulNote, 0, len(messages))
	for i, m := range messages {
		out = append(out, &models.SoulNote{ID: int64(i + 1), Message: m.message, Category: m.category})
	}
	return out
}

func (m *InMemoryManager) Users() users.Repository         { return m.users }
func (m *InMemoryManager) Letters() letters.Repository     { return m.letters }
func (m *InMemoryManager) Capsules() capsules.Repository   { return m.capsules }
func (m *InMemoryManager) Notes() notes.Repository         { return m.notes }
func (m *InMemoryManager) SoulNotes() soulnotes.Repository { return m.soulNotes }

func (m *InMemoryManager) Close() error { return nil }
