package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSQLOpen(t *testing.T, wantDriver string, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != wantDriver {
			return nil, errors.New("unexpected driver " + driver)
		}
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestNewRepositoryManager_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()
	mock.ExpectClose()
	stubSQLOpen(t, "pgx", db, nil)

	var gotDir string
	stubGoose(t, func(ctx context.Context, _ *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	})

	m, err := NewRepositoryManager(context.Background(), &config.Config{StoreDriver: config.StorePostgres, DatabaseDSN: "postgres://x"})
	require.NoError(t, err)
	require.IsType(t, &PostgresRepositoryManager{}, m)

	var _ users.Repository = m.Users()
	assert.IsType(t, &users.PostgresRepository{}, m.Users())

	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, "postgres", gotDir)

	require.NoError(t, m.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRepositoryManager_PostgresPingFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()
	stubSQLOpen(t, "pgx", db, nil)

	m, err := NewRepositoryManager(context.Background(), &config.Config{StoreDriver: config.StorePostgres})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "db ping")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRepositoryManager_OpenFails(t *testing.T) {
	stubSQLOpen(t, "sqlite", nil, errors.New("bad dsn"))

	_, err := NewRepositoryManager(context.Background(), &config.Config{StoreDriver: config.StoreSQLite})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open")
}

func TestRunMigrations_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stubGoose(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	m, err := NewPostgresRepositoryManager(db)
	require.NoError(t, err)
	err = m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestSQLiteManager_RealMigrations(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StoreDriver: config.StoreSQLite, DatabaseDSN: "file:repomanager_test?mode=memory&cache=shared"}

	m, err := NewRepositoryManager(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.RunMigrations(ctx))
	// migrations are idempotent
	require.NoError(t, m.RunMigrations(ctx))

	repo := m.Users()
	created, err := repo.Create(ctx, &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.Create(ctx, &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	require.ErrorIs(t, err, common.ErrorConflict)
}

func TestNewRepositoryManager_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	m, err := NewRepositoryManager(ctx, &config.Config{StoreDriver: config.StoreRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	require.IsType(t, &RedisRepositoryManager{}, m)
	require.NoError(t, m.RunMigrations(ctx))

	_, err = m.Users().Create(ctx, &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.True(t, mr.Exists("gophauth:email:ann@x.com"))

	require.NoError(t, m.Close())
}

func TestNewRepositoryManager_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRepositoryManager(context.Background(), &config.Config{StoreDriver: config.StoreRedis, RedisAddr: addr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}

func TestNewRepositoryManager_Memory(t *testing.T) {
	m, err := NewRepositoryManager(context.Background(), &config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(context.Background()))
	assert.IsType(t, &users.MemoryRepository{}, m.Users())
	require.NoError(t, m.Close())
}

func TestNewRepositoryManager_UnknownDriver(t *testing.T) {
	_, err := NewRepositoryManager(context.Background(), &config.Config{StoreDriver: "mongo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}
