package soulnotes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/dbx"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Random(ctx context.Context) (*models.SoulNote, error) {
	// The pool is tiny (tens of rows), so ORDER BY random() is fine.
	query :=
		`SELECT id, message, COALESCE(category, '') FROM soul_notes
		 ORDER BY random()
		 LIMIT 1
		 `

	n := &models.SoulNote{}
	err := r.db.QueryRowContext(ctx, query).Scan(&n.ID, &n.Message, &n.Category)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}
