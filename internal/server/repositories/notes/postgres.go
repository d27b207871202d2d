package notes

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserNote, error) {
	query :=
		`SELECT id, user_id, content, created_at FROM user_notes
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.UserNote, 0)
	for rows.Next() {
		n := &models.UserNote{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID int64) (*models.UserNote, error) {
	query :=
		`SELECT id, user_id, content, created_at FROM user_notes
		 WHERE id = $1 AND user_id = $2
		 `

	n := &models.UserNote{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&n.ID, &n.UserID, &n.Content, &n.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.UserNote) (*models.UserNote, error) {
	query :=
		`INSERT INTO user_notes (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.Content).Scan(&note.ID, &note.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.UserNote) (*models.UserNote, error) {
	query :=
		`UPDATE user_notes SET content = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Content, note.ID, note.UserID).Scan(&note.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM user_notes WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
