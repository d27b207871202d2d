// Package repomanager bundles the per-aggregate repositories behind one
// constructor so the service layer does not care which backend is running.
package repomanager

import (
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/capsules"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/letters"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/notes"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/soulnotes"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/users"
)

type Manager interface {
	Users() users.Repository
	Letters() letters.Repository
	Capsules() capsules.Repository
	Notes() notes.Repository
	SoulNotes() soulnotes.Repository

	Close() error
}
