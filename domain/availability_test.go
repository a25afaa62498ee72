package domain

import (
	"encoding/json"
	"testing"
	"time"

	"timebank/errors"

	"github.com/stretchr/testify/require"
)

func TestAddSlot_OnEmptySequence_AppendsDefault(t *testing.T) {
	req := require.New(t)

	slots := AddSlot(nil)

	req.Len(slots, 1)
	req.Equal(Slot{Day: Monday, StartTime: Clock(9, 0), EndTime: Clock(11, 0)}, slots[0])
}

func TestAddSlot_DoesNotMutateInput(t *testing.T) {
	req := require.New(t)
	slots := make([]Slot, 1, 4)
	slots[0] = Slot{Day: Friday, StartTime: Clock(14, 0), EndTime: Clock(15, 0)}

	updated := AddSlot(slots)
	updated[0].Day = Sunday

	req.Len(slots, 1)
	req.Equal(Friday, slots[0].Day)
	req.Len(updated, 2)
}

func TestRemoveSlot(t *testing.T) {
	a := Slot{Day: Monday, StartTime: Clock(8, 0), EndTime: Clock(9, 0)}
	b := Slot{Day: Tuesday, StartTime: Clock(10, 0), EndTime: Clock(11, 0)}
	c := Slot{Day: Wednesday, StartTime: Clock(12, 0), EndTime: Clock(13, 30)}

	t.Run("should remove the element and keep the order of the rest", func(t *testing.T) {
		req := require.New(t)
		slots := []Slot{a, b, c}
		for i := range slots {
			remaining, err := RemoveSlot(slots, i)
			req.NoError(err)
			req.Len(remaining, len(slots)-1)
			req.NotContains(remaining, slots[i])
		}
		remaining, err := RemoveSlot(slots, 1)
		req.NoError(err)
		req.Equal([]Slot{a, c}, remaining)
		req.Equal([]Slot{a, b, c}, slots)
	})

	t.Run("should report an out of range index", func(t *testing.T) {
		req := require.New(t)
		slots := []Slot{a}

		remaining, err := RemoveSlot(slots, 1)
		req.ErrorIs(err, errors.ErrSlotIndexOutOfRange)
		req.Equal(slots, remaining)

		_, err = RemoveSlot(slots, -1)
		req.ErrorIs(err, errors.ErrSlotIndexOutOfRange)
	})
}

func TestUpdateSlot_Examples(t *testing.T) {
	t.Run("should reject more than two hours", func(t *testing.T) {
		req := require.New(t)
		slots := []Slot{DefaultSlot}

		edit, err := UpdateSlot(slots, 0, FieldEndTime, "13:00")

		req.NoError(err)
		req.True(edit.Rejected())
		req.Equal("Maximum 2 hours per day allowed", edit.Rejection.Error())
		req.Equal([]Slot{DefaultSlot}, edit.Slots)
		req.Equal([]Slot{DefaultSlot}, slots)
	})

	t.Run("should reject an end before the start", func(t *testing.T) {
		req := require.New(t)
		slots := []Slot{DefaultSlot}

		edit, err := UpdateSlot(slots, 0, FieldEndTime, "08:00")

		req.NoError(err)
		req.True(edit.Rejected())
		req.Equal("End time must be after start time", edit.Rejection.Error())
		req.Equal([]Slot{DefaultSlot}, slots)
	})

	t.Run("should commit a valid change", func(t *testing.T) {
		req := require.New(t)
		slots := []Slot{DefaultSlot}

		edit, err := UpdateSlot(slots, 0, FieldStartTime, "10:15")

		req.NoError(err)
		req.False(edit.Rejected())
		req.Equal(Clock(10, 15), edit.Slots[0].StartTime)
		req.Equal(Clock(9, 0), slots[0].StartTime)
	})

	t.Run("should accept exactly two hours", func(t *testing.T) {
		req := require.New(t)
		slots := []Slot{{Day: Monday, StartTime: Clock(9, 0), EndTime: Clock(10, 0)}}

		edit, err := UpdateSlot(slots, 0, FieldEndTime, "11:00")

		req.NoError(err)
		req.False(edit.Rejected())
		req.Equal(2*time.Hour, edit.Slots[0].Duration())
	})

	t.Run("should change the day", func(t *testing.T) {
		req := require.New(t)

		edit, err := UpdateSlot([]Slot{DefaultSlot}, 0, FieldDay, "Saturday")

		req.NoError(err)
		req.False(edit.Rejected())
		req.Equal(Saturday, edit.Slots[0].Day)
	})
}

func TestUpdateSlot_MalformedRequests(t *testing.T) {
	slots := []Slot{DefaultSlot}
	tests := []struct {
		name  string
		index int
		field SlotField
		value string
		err   error
	}{
		{"index out of range", 3, FieldDay, "Monday", errors.ErrSlotIndexOutOfRange},
		{"unknown field", 0, SlotField("duration"), "01:00", errors.ErrUnknownSlotField},
		{"unknown weekday", 0, FieldDay, "Funday", errors.ErrInvalidWeekday},
		{"hour out of range", 0, FieldStartTime, "24:00", errors.ErrInvalidTimeOfDay},
		{"not a clock", 0, FieldEndTime, "noon", errors.ErrInvalidTimeOfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			edit, err := UpdateSlot(slots, tt.index, tt.field, tt.value)
			req.ErrorIs(err, tt.err)
			req.Equal(slots, edit.Slots)
		})
	}
}

func TestUpdateSlot_DurationInvariantHoldsForEveryEndTime(t *testing.T) {
	req := require.New(t)
	start := Clock(9, 0)
	slots := []Slot{{Day: Thursday, StartTime: start, EndTime: Clock(10, 0)}}

	for end := TimeOfDay(0); end < minutesPerDay; end += 5 {
		edit, err := UpdateSlot(slots, 0, FieldEndTime, end.String())
		req.NoError(err)

		switch {
		case end <= start:
			req.Equal(errors.ErrSlotEndNotAfter, edit.Rejection, end.String())
			req.Equal(slots, edit.Slots)
		case end.Sub(start) > MaxSlotDuration:
			req.Equal(errors.ErrSlotTooLong, edit.Rejection, end.String())
			req.Equal(slots, edit.Slots)
		default:
			req.False(edit.Rejected(), end.String())
			req.Equal(end, edit.Slots[0].EndTime)
		}
	}
}

func TestSlot_JSONUsesClockStrings(t *testing.T) {
	req := require.New(t)

	data, err := json.Marshal(DefaultSlot)
	req.NoError(err)
	req.JSONEq(`{"day":"Monday","startTime":"09:00","endTime":"11:00"}`, string(data))

	var decoded Slot
	req.NoError(json.Unmarshal(data, &decoded))
	req.Equal(DefaultSlot, decoded)
}
