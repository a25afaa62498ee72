package server

import (
	"context"

	pb "timebank/api/v1"
	"timebank/auth"
	"timebank/domain"
	"timebank/errors"
	"timebank/services"

	"github.com/samber/lo"
)

// AvailabilityServer validates the slots a registration form is editing.
// A rejected edit is an ordinary response, never a gRPC error.
type AvailabilityServer struct {
	pb.UnimplementedAvailabilityServiceServer
	availabilityService services.IAvailabilityService
}

func NewAvailabilityServer(availabilityService services.IAvailabilityService) *AvailabilityServer {
	return &AvailabilityServer{availabilityService: availabilityService}
}

func (s *AvailabilityServer) AddSlot(_ context.Context, in *pb.AddSlotRequest) (*pb.SlotsResponse, error) {
	slots, err := fromPbSlots(in.Slots)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SlotsResponse{Slots: toPbSlots(s.availabilityService.AddSlot(slots))}, nil
}

func (s *AvailabilityServer) RemoveSlot(_ context.Context, in *pb.RemoveSlotRequest) (*pb.SlotsResponse, error) {
	slots, err := fromPbSlots(in.Slots)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	remaining, err := s.availabilityService.RemoveSlot(slots, int(in.Index))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SlotsResponse{Slots: toPbSlots(remaining)}, nil
}

func (s *AvailabilityServer) UpdateSlot(_ context.Context, in *pb.UpdateSlotRequest) (*pb.UpdateSlotResponse, error) {
	slots, err := fromPbSlots(in.Slots)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	edit, err := s.availabilityService.UpdateSlot(slots, int(in.Index), domain.SlotField(in.Field), in.Value)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	response := &pb.UpdateSlotResponse{Slots: toPbSlots(edit.Slots), Rejected: edit.Rejected()}
	if edit.Rejected() {
		response.Reason = edit.Rejection.Reason
	}
	return response, nil
}

func (s *AvailabilityServer) GetAvailability(ctx context.Context, in *pb.GetAvailabilityRequest) (*pb.SlotsResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := s.availabilityService.GetAvailability(ctx, lo.CoalesceOrEmpty(in.UserID, userID))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SlotsResponse{Slots: toPbSlots(slots)}, nil
}
