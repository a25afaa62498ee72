//go:generate go run go.uber.org/mock/mockgen -source=availability_service.go -destination=../mocks/mock_availability_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"timebank/domain"
	"timebank/repositories"
)

type IAvailabilityService interface {
	AddSlot(slots []domain.Slot) []domain.Slot
	RemoveSlot(slots []domain.Slot, index int) ([]domain.Slot, error)
	UpdateSlot(slots []domain.Slot, index int, field domain.SlotField, value string) (domain.SlotEdit, error)
	GetAvailability(ctx context.Context, userID string) ([]domain.Slot, error)
}

// AvailabilityService edits the slots a registration form is holding.
// Nothing is stored until the registration is completed.
type AvailabilityService struct {
	log        *slog.Logger
	repository repositories.IAvailabilityRepository
}

func NewAvailabilityService(log *slog.Logger, repository repositories.IAvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{log: log, repository: repository}
}

func (a *AvailabilityService) AddSlot(slots []domain.Slot) []domain.Slot {
	return domain.AddSlot(slots)
}

func (a *AvailabilityService) RemoveSlot(slots []domain.Slot, index int) ([]domain.Slot, error) {
	return domain.RemoveSlot(slots, index)
}

func (a *AvailabilityService) UpdateSlot(slots []domain.Slot, index int, field domain.SlotField, value string) (domain.SlotEdit, error) {
	edit, err := domain.UpdateSlot(slots, index, field, value)
	if err != nil {
		return domain.SlotEdit{}, err
	}
	if edit.Rejected() {
		a.log.Debug("Slot edit rejected", "index", index, "field", string(field),
			"value", value, "reason", edit.Rejection.Reason)
	}
	return edit, nil
}

func (a *AvailabilityService) GetAvailability(ctx context.Context, userID string) ([]domain.Slot, error) {
	return a.repository.GetBatch(ctx, userID)
}
