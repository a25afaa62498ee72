package errors

import (
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain errors into gRPC status errors.
// Unknown errors are reported as Internal without leaking their message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case IsCorrupt(err):
		return status.Error(codes.DataLoss, "stored record is corrupt")
	case IsPersistence(err) && persistenceOp(err) == OpEncode:
		return status.Error(codes.Internal, "internal error")
	case IsPersistence(err):
		return status.Error(codes.Unavailable, "storage unavailable, please retry")
	case IsCapture(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case anyOf(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case anyOf(err, ErrUserAlreadyExists, ErrProfileAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case anyOf(err, ErrProfileNotFound):
		return status.Error(codes.NotFound, err.Error())
	case anyOf(err,
		ErrInvalidPassword, ErrInvalidProfile, ErrAvailabilityMissing,
		ErrSlotIndexOutOfRange, ErrUnknownSlotField, ErrInvalidWeekday, ErrInvalidTimeOfDay,
		ErrEmptyMessage, ErrInvalidAudioPayload):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func persistenceOp(err error) string {
	var p *PersistenceError
	if stderrors.As(err, &p) {
		return p.Op
	}
	return ""
}

func anyOf(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
