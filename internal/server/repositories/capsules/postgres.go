package capsules

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.TimeCapsule, error) {
	query :=
		`SELECT id, user_id, message, open_date, created_at FROM time_capsules
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.TimeCapsule, 0)
	for rows.Next() {
		c := &models.TimeCapsule{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Message, &c.OpenDate, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID int64) (*models.TimeCapsule, error) {
	query :=
		`SELECT id, user_id, message, open_date, created_at FROM time_capsules
		 WHERE id = $1 AND user_id = $2
		 `

	c := &models.TimeCapsule{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Message, &c.OpenDate, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, capsule *models.TimeCapsule) (*models.TimeCapsule, error) {
	query :=
		`INSERT INTO time_capsules (user_id, message, open_date)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		capsule.UserID, capsule.Message, capsule.OpenDate).Scan(&capsule.ID, &capsule.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return capsule, nil
}

func (r *PostgresRepository) Update(ctx context.Context, capsule *models.TimeCapsule) (*models.TimeCapsule, error) {
	query :=
		`UPDATE time_capsules SET message = $1, open_date = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		capsule.Message, capsule.OpenDate, capsule.ID, capsule.UserID).Scan(&capsule.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return capsule, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM time_capsules WHERE id = $1 AND user_id = $2`

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
