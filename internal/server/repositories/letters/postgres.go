package letters

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Letter, error) {
	query :=
		`SELECT id, user_id, title, content, created_at FROM letters
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Letter, 0)
	for rows.Next() {
		l := &models.Letter{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Content, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID int64) (*models.Letter, error) {
	query :=
		`SELECT id, user_id, title, content, created_at FROM letters
		 WHERE id = $1 AND user_id = $2
		 `

	l := &models.Letter{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&l.ID, &l.UserID, &l.Title, &l.Content, &l.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) Create(ctx context.Context, letter *models.Letter) (*models.Letter, error) {
	query :=
		`INSERT INTO letters (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		letter.UserID, letter.Title, letter.Content).Scan(&letter.ID, &letter.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return letter, nil
}

func (r *PostgresRepository) Update(ctx context.Context, letter *models.Letter) (*models.Letter, error) {
	query :=
		`UPDATE letters SET title = $1, content = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		letter.Title, letter.Content, letter.ID, letter.UserID).Scan(&letter.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return letter, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM letters WHERE id = $1 AND user_id = $2`

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
