package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Availability
	ErrSlotIndexOutOfRange = fmt.Errorf("slot index out of range")
	ErrUnknownSlotField    = fmt.Errorf("unknown slot field")
	ErrInvalidWeekday      = fmt.Errorf("invalid weekday")
	ErrInvalidTimeOfDay    = fmt.Errorf("invalid time of day")
	ErrAvailabilityMissing = fmt.Errorf("please add at least one availability slot")

	// Chat
	ErrEmptyMessage        = fmt.Errorf("message is empty")
	ErrInvalidAudioPayload = fmt.Errorf("invalid audio payload")
	ErrAlreadyRecording    = fmt.Errorf("a recording is already in progress")
	ErrNotRecording        = fmt.Errorf("no recording in progress")
	ErrEmptyRecording      = fmt.Errorf("recording produced no audio")
	ErrCaptureUnavailable  = fmt.Errorf("could not access microphone")

	// Accounts and profiles
	ErrInvalidPassword      = fmt.Errorf("invalid password")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrTokenGeneration      = fmt.Errorf("token generation failed")
	ErrInvalidProfile       = fmt.Errorf("invalid profile")
	ErrProfileAlreadyExists = fmt.Errorf("you already have a profile")
	ErrProfileNotFound      = fmt.Errorf("user not found")
)

// Slot rejections surfaced to the user as-is.
var (
	ErrSlotTooLong     = &ValidationError{Reason: "Maximum 2 hours per day allowed"}
	ErrSlotEndNotAfter = &ValidationError{Reason: "End time must be after start time"}
)

// ValidationError is a user-facing, non-fatal rejection of an input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CaptureError reports that the audio capture source could not be acquired or released.
type CaptureError struct {
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("%s: %v", ErrCaptureUnavailable, e.Err)
}

func (e *CaptureError) Unwrap() []error {
	return []error{ErrCaptureUnavailable, e.Err}
}

// Persistence operations. Load and save reach the backend; encode and decode
// fail on the record itself and are not fixed by a retry.
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpEncode = "encode"
	OpDecode = "decode"
)

// PersistenceError wraps a failing read or write against the key-value store.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports a stored record that can no longer be decoded.
func IsCorrupt(err error) bool {
	var p *PersistenceError
	return stderrors.As(err, &p) && p.Op == OpDecode
}

func IsValidation(err error) bool {
	var v *ValidationError
	return stderrors.As(err, &v)
}

func IsPersistence(err error) bool {
	var p *PersistenceError
	return stderrors.As(err, &p)
}

func IsCapture(err error) bool {
	var c *CaptureError
	return stderrors.As(err, &c)
}
