// Package domain contains core concepts of the time-bank.
// This file defines weekly availability slots and the rules that bound them.
// Operations are pure: they never mutate the sequence they are given.
package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"timebank/errors"

	"github.com/samber/lo"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.TrimSpace(s))
	if !slices.Contains(Weekdays, day) {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidWeekday, s)
	}
	return day, nil
}

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

// Clock builds a TimeOfDay, panicking on out of range values. Meant for constants.
func Clock(hour, minute int) TimeOfDay {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		panic(fmt.Sprintf("invalid clock %02d:%02d", hour, minute))
	}
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts the "HH:MM" form produced by time inputs.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidTimeOfDay, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	if t < 0 || t >= minutesPerDay {
		return nil, fmt.Errorf("%w: %d minutes", errors.ErrInvalidTimeOfDay, int(t))
	}
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Sub returns the duration between two times of the same calendar day.
// The result is negative when u is after t.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(int(t)-int(u)) * time.Minute
}

// Slot is one weekly availability interval of an executive.
type Slot struct {
	Day       Weekday   `json:"day"`
	StartTime TimeOfDay `json:"startTime"`
	EndTime   TimeOfDay `json:"endTime"`
}

func (s Slot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

const MaxSlotDuration = 2 * time.Hour

// DefaultSlot is the slot appended by AddSlot.
var DefaultSlot = Slot{Day: Monday, StartTime: Clock(9, 0), EndTime: Clock(11, 0)}

type SlotField string

const (
	FieldDay       SlotField = "day"
	FieldStartTime SlotField = "startTime"
	FieldEndTime   SlotField = "endTime"
)

// SlotEdit is the outcome of UpdateSlot.
// When Rejection is set, Slots is the sequence the caller passed in.
type SlotEdit struct {
	Slots     []Slot
	Rejection *errors.ValidationError
}

func (e SlotEdit) Rejected() bool {
	return e.Rejection != nil
}

// ValidateSlot checks the per-slot duration invariant: 0 < end-start <= MaxSlotDuration.
func ValidateSlot(slot Slot) *errors.ValidationError {
	duration := slot.Duration()
	if duration > MaxSlotDuration {
		return errors.ErrSlotTooLong
	}
	if duration <= 0 {
		return errors.ErrSlotEndNotAfter
	}
	return nil
}

func AddSlot(slots []Slot) []Slot {
	return append(slices.Clone(slots), DefaultSlot)
}

func RemoveSlot(slots []Slot, index int) ([]Slot, error) {
	if index < 0 || index >= len(slots) {
		return slots, fmt.Errorf("%w: %d not in [0,%d)", errors.ErrSlotIndexOutOfRange, index, len(slots))
	}
	return lo.Filter(slots, func(_ Slot, i int) bool {
		return i != index
	}), nil
}

// UpdateSlot replaces one field of the slot at index.
// Malformed requests (bad index, field or value) are returned as errors,
// whereas a well-formed change breaking the duration invariant is a rejected SlotEdit.
func UpdateSlot(slots []Slot, index int, field SlotField, value string) (SlotEdit, error) {
	if index < 0 || index >= len(slots) {
		return SlotEdit{Slots: slots}, fmt.Errorf("%w: %d not in [0,%d)", errors.ErrSlotIndexOutOfRange, index, len(slots))
	}

	slot := slots[index]
	switch field {
	case FieldDay:
		day, err := ParseWeekday(value)
		if err != nil {
			return SlotEdit{Slots: slots}, err
		}
		slot.Day = day
	case FieldStartTime, FieldEndTime:
		t, err := ParseTimeOfDay(value)
		if err != nil {
			return SlotEdit{Slots: slots}, err
		}
		if field == FieldStartTime {
			slot.StartTime = t
		} else {
			slot.EndTime = t
		}
	default:
		return SlotEdit{Slots: slots}, fmt.Errorf("%w: %q", errors.ErrUnknownSlotField, field)
	}

	if rejection := ValidateSlot(slot); rejection != nil {
		return SlotEdit{Slots: slots, Rejection: rejection}, nil
	}

	updated := slices.Clone(slots)
	updated[index] = slot
	return SlotEdit{Slots: updated}, nil
}
