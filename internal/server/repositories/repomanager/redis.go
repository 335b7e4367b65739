package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/redis/go-redis/v9"
)

type RedisRepositoryManager struct {
	client redis.UniversalClient
	users  users.Repository
}

func NewRedisRepositoryManager(client redis.UniversalClient, prefix string) *RedisRepositoryManager {
	return &RedisRepositoryManager{client: client, users: users.NewRedisRepository(client, prefix)}
}

func (m *RedisRepositoryManager) Users() users.Repository {
	return m.users
}

// RunMigrations is a no-op: redis keys need no schema.
func (m *RedisRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *RedisRepositoryManager) Close() error {
	return m.client.Close()
}
