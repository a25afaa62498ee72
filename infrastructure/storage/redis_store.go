package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements contract.KeyValueStore on a shared Redis instance,
// letting several server processes read the same conversation logs.
// Writes are plain SET: concurrent appends from two processes keep the last write.
type RedisStore struct {
	client redis.UniversalClient
	log    *slog.Logger
}

func NewRedisStore(client redis.UniversalClient, log *slog.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.log.Error("redis write failed", "key", key, "error", err)
		return err
	}
	return nil
}
