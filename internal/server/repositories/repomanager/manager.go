// Package repomanager opens the configured credential store and vends its
// repositories. Postgres and SQLite stores run embedded goose migrations;
// Redis and memory stores need none.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Close() error
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for tests that must not reach a real database.
var sqlOpen = sql.Open

// NewRepositoryManager connects to the store selected by cfg.StoreDriver.
// The connection is verified before returning.
func NewRepositoryManager(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openSQL(ctx, "pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepositoryManager(db)

	case config.StoreSQLite:
		db, err := openSQL(ctx, "sqlite", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewSQLiteRepositoryManager(db)

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedisRepositoryManager(client, users.DefaultRedisPrefix), nil

	case config.StoreMemory:
		return NewMemoryRepositoryManager(), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func openSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}
