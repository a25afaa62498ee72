package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"timebank/contract"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupBadger(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKeyValueStores(t *testing.T) {
	stores := map[string]func(t *testing.T) contract.KeyValueStore{
		"memory": func(t *testing.T) contract.KeyValueStore {
			return NewMemoryStore()
		},
		"badger": func(t *testing.T) contract.KeyValueStore {
			return NewBadgerStore(setupBadger(t), slog.Default())
		},
		"redis": func(t *testing.T) contract.KeyValueStore {
			addr := os.Getenv("REDIS_ADDR")
			if addr == "" {
				t.Skip("REDIS_ADDR not set")
			}
			client := redis.NewClient(&redis.Options{Addr: addr})
			t.Cleanup(func() { _ = client.Close() })
			return NewRedisStore(client, slog.Default())
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("should report a missing key as not found", func(t *testing.T) {
				req := require.New(t)
				store := newStore(t)

				value, found, err := store.Get(ctx, "chat-"+uuid.NewString())

				req.NoError(err)
				req.False(found)
				req.Empty(value)
			})

			t.Run("should replace the whole value on set", func(t *testing.T) {
				req := require.New(t)
				store := newStore(t)
				key := "availability:" + uuid.NewString()

				req.NoError(store.Set(ctx, key, `[{"day":"Monday"}]`))
				req.NoError(store.Set(ctx, key, `[]`))

				value, found, err := store.Get(ctx, key)
				req.NoError(err)
				req.True(found)
				req.Equal(`[]`, value)
			})
		})
	}
}

func TestMemoryStore_HonoursCanceledContext(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.ErrorIs(store.Set(ctx, "k", "v"), context.Canceled)
	_, _, err := store.Get(ctx, "k")
	req.ErrorIs(err, context.Canceled)
}
