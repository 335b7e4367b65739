package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db    *sql.DB
	users users.Repository
}

func NewPostgresRepositoryManager(db *sql.DB) (*PostgresRepositoryManager, error) {
	return &PostgresRepositoryManager{db: db, users: users.NewPostgresRepository(db)}, nil
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

// RunMigrations applies the embedded postgres migrations with goose.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, migrations.PostgresDir)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
