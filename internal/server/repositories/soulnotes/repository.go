// Package soulnotes stores the shared pool of short comforting thoughts.
// Read-only at runtime; rows arrive via migration seed.
package soulnotes

import (
	"context"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type Repository interface {
	// Random returns one soul note picked uniformly, or common.ErrNotFound
	// when the pool is empty.
	Random(ctx context.Context) (*models.SoulNote, error)
}
