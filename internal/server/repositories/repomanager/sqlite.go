package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

type SQLiteRepositoryManager struct {
	db    *sql.DB
	users users.Repository
}

// NewSQLiteRepositoryManager limits the pool to one connection; SQLite
// serialises writers anyway and this keeps in-memory databases shared.
func NewSQLiteRepositoryManager(db *sql.DB) (*SQLiteRepositoryManager, error) {
	db.SetMaxOpenConns(1)
	return &SQLiteRepositoryManager{db: db, users: users.NewSQLiteRepository(db)}, nil
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, migrations.SQLiteDir)
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}
