package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore implements contract.KeyValueStore on an embedded BadgerDB.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (b *BadgerStore) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

// Set replaces the whole value stored at key.
func (b *BadgerStore) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		b.log.Error("badger write failed", "key", key, "error", err)
	}
	return err
}
