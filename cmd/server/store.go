package main

import (
	"context"
	"fmt"
	"log/slog"

	"timebank/contract"
	"timebank/infrastructure/storage"
	"timebank/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/redis/go-redis/v9"
)

// buildStore selects where conversations and availability batches live.
func buildStore(ctx context.Context, config internal.Config, db *badger.DB, logger *slog.Logger) (contract.KeyValueStore, func(), error) {
	switch internal.StoreBackend(config.StoreBackend) {
	case internal.BackendRedis:
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{config.RedisAddr},
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", config.RedisAddr, err)
		}
		logger.Info("Conversations stored in Redis", "addr", config.RedisAddr, "db", config.RedisDB)
		return storage.NewRedisStore(client, logger), func() {
			logger.Info("Closing Redis...")
			_ = client.Close()
		}, nil
	case internal.BackendMemory:
		logger.Warn("Conversations kept in memory, nothing survives a restart")
		return storage.NewMemoryStore(), func() {}, nil
	default:
		return storage.NewBadgerStore(db, logger), func() {}, nil
	}
}
