//go:generate go run go.uber.org/mock/mockgen -source=availability.go -destination=../mocks/mock_availability_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"timebank/contract"
	"timebank/domain"
	"timebank/errors"
)

type IAvailabilityRepository interface {
	SaveBatch(ctx context.Context, userID string, slots []domain.Slot) error
	GetBatch(ctx context.Context, userID string) ([]domain.Slot, error)
}

type AvailabilityRepository struct {
	store contract.KeyValueStore
	log   *slog.Logger
}

func NewAvailabilityRepository(store contract.KeyValueStore, log *slog.Logger) *AvailabilityRepository {
	return &AvailabilityRepository{store: store, log: log}
}

func availabilityKey(userID string) string {
	return fmt.Sprintf("availability:%s", userID)
}

// SaveBatch stores the weekly slots of one user, replacing any previous batch.
func (a AvailabilityRepository) SaveBatch(ctx context.Context, userID string, slots []domain.Slot) error {
	key := availabilityKey(userID)
	if slots == nil {
		slots = []domain.Slot{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return &errors.PersistenceError{Op: errors.OpEncode, Key: key, Err: err}
	}
	if err = a.store.Set(ctx, key, string(data)); err != nil {
		return &errors.PersistenceError{Op: errors.OpSave, Key: key, Err: err}
	}
	a.log.Debug("Availability saved", "user_id", userID, "slots", len(slots))
	return nil
}

// GetBatch returns the slots of a user, or an empty batch when none was saved.
func (a AvailabilityRepository) GetBatch(ctx context.Context, userID string) ([]domain.Slot, error) {
	key := availabilityKey(userID)
	raw, found, err := a.store.Get(ctx, key)
	if err != nil {
		return nil, &errors.PersistenceError{Op: errors.OpLoad, Key: key, Err: err}
	}
	if !found {
		return []domain.Slot{}, nil
	}
	var slots []domain.Slot
	if err = json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, &errors.PersistenceError{Op: errors.OpDecode, Key: key, Err: err}
	}
	return slots, nil
}
