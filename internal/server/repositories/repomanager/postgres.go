package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Algo-jtx/SoulSpace/internal/server/migrations"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/capsules"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/letters"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/notes"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/soulnotes"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/users"
)

type PostgresManager struct {
	db        *sql.DB
	users     users.Repository
	letters   letters.Repository
	capsules  capsules.Repository
	notes     notes.Repository
	soulNotes soulnotes.Repository
}

// NewPostgresManager opens the database, applies pending migrations, and
// wires the repositories.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:        db,
		users:     users.NewPostgresRepository(db),
		letters:   letters.NewPostgresRepository(db),
		capsules:  capsules.NewPostgresRepository(db),
		notes:     notes.NewPostgresRepository(db),
		soulNotes: soulnotes.NewPostgresRepository(db),
	}

	if err := m.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Users() users.Repository         { return m.users }
func (m *PostgresManager) Letters() letters.Repository     { return m.letters }
func (m *PostgresManager) Capsules() capsules.Repository   { return m.capsules }
func (m *PostgresManager) Notes() notes.Repository         { return m.notes }
func (m *PostgresManager) SoulNotes() soulnotes.Repository { return m.soulNotes }

func (m *PostgresManager) Close() error { return m.db.Close() }
