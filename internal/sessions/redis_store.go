package sessions

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	cmd := r.client.B().Set().
		Key(r.key(token)).
		Value(strconv.FormatUint(uint64(userID), 10)).
		ExSeconds(int64(ttl / time.Second)).
		Build()

	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return "", err
	}

	return token, nil
}

func (r *RedisStore) Resolve(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}

	cmd := r.client.B().Get().Key(r.key(token)).Build()
	id, err := r.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	return uint(id), nil
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	cmd := r.client.B().Del().Key(r.key(token)).Build()
	return r.client.Do(ctx, cmd).Error()
}
