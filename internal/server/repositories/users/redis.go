package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "gophauth"

// KEYS[1] email index, KEYS[2] user hash.
// ARGV: id, name, email, password_hash, created_at (unix millis).
var createUserLua = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call('HSET', KEYS[2],
  'id', ARGV[1],
  'name', ARGV[2],
  'email', ARGV[3],
  'password_hash', ARGV[4],
  'created_at', ARGV[5])
return 1
`)

// RedisRepository keeps each user as a hash under <prefix>:user:<id> and an
// email index under <prefix>:email:<email>. The index key is claimed with
// SETNX inside a script, so email uniqueness holds across concurrent writers.
type RedisRepository struct {
	redis  redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisRepository{redis: client, prefix: prefix, now: time.Now}
}

func (r *RedisRepository) emailKey(email string) string {
	return r.prefix + ":email:" + email
}

func (r *RedisRepository) userKey(id string) string {
	return r.prefix + ":user:" + id
}

func (r *RedisRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id := uuid.NewString()
	createdAt := r.now().UTC().Truncate(time.Millisecond)

	res, err := createUserLua.Run(ctx, r.redis,
		[]string{r.emailKey(user.Email), r.userKey(id)},
		id, user.Name, user.Email, user.PasswordHash, createdAt.UnixMilli(),
	).Int()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if res == 0 {
		return nil, common.ErrorConflict
	}

	user.ID = id
	user.CreatedAt = createdAt
	return user, nil
}

func (r *RedisRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	id, err := r.redis.Get(ctx, r.emailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	fields, err := r.redis.HGetAll(ctx, r.userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		// index without a record; treat the user as absent
		return nil, nil
	}

	millis, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt user record %s: %w", id, err)
	}

	return &models.User{
		ID:           fields["id"],
		Name:         fields["name"],
		Email:        fields["email"],
		PasswordHash: fields["password_hash"],
		CreatedAt:    time.UnixMilli(millis).UTC(),
	}, nil
}
