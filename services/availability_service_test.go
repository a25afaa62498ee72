package services

import (
	"context"
	"log/slog"
	"testing"

	"timebank/domain"
	"timebank/errors"
	"timebank/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityService_EditsFormSlots(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIAvailabilityRepository(ctrl)
	svc := NewAvailabilityService(slog.Default(), repo)

	// Nothing is persisted while the form is edited
	repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	slots := svc.AddSlot(nil)
	req.Equal([]domain.Slot{domain.DefaultSlot}, slots)

	edit, err := svc.UpdateSlot(slots, 0, domain.FieldEndTime, "13:00")
	req.NoError(err)
	req.True(edit.Rejected())
	req.Equal("Maximum 2 hours per day allowed", edit.Rejection.Error())
	req.Equal(slots, edit.Slots)

	edit, err = svc.UpdateSlot(slots, 0, domain.FieldEndTime, "08:00")
	req.NoError(err)
	req.Equal("End time must be after start time", edit.Rejection.Error())

	edit, err = svc.UpdateSlot(slots, 0, domain.FieldDay, "Wednesday")
	req.NoError(err)
	req.False(edit.Rejected())
	req.Equal(domain.Wednesday, edit.Slots[0].Day)

	_, err = svc.UpdateSlot(slots, 3, domain.FieldDay, "Wednesday")
	req.ErrorIs(err, errors.ErrSlotIndexOutOfRange)

	remaining, err := svc.RemoveSlot(edit.Slots, 0)
	req.NoError(err)
	req.Empty(remaining)
}

func TestAvailabilityService_GetAvailability(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIAvailabilityRepository(ctrl)
	svc := NewAvailabilityService(slog.Default(), repo)

	stored := []domain.Slot{domain.DefaultSlot}
	repo.EXPECT().GetBatch(gomock.Any(), "exec-1").Return(stored, nil).Times(1)

	slots, err := svc.GetAvailability(context.Background(), "exec-1")

	req.NoError(err)
	req.Equal(stored, slots)
}
