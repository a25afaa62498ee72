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

type ProfileServer struct {
	pb.UnimplementedProfileServiceServer
	profileService services.IProfileService
}

func NewProfileServer(profileService services.IProfileService) *ProfileServer {
	return &ProfileServer{profileService: profileService}
}

// CompleteRegistration falls back to the account email when the form leaves it blank.
func (s *ProfileServer) CompleteRegistration(ctx context.Context, in *pb.CompleteRegistrationRequest) (*pb.ProfileResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := fromPbSlots(in.Slots)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	profile, err := s.profileService.CompleteRegistration(ctx, userID, auth.RegistrationRequest{
		FullName:  in.FullName,
		Phone:     in.Phone,
		Email:     lo.CoalesceOrEmpty(in.Email, auth.EmailFromContext(ctx)),
		PhotoURL:  in.PhotoURL,
		IDCardURL: in.IDCardURL,
		Role:      domain.Role(in.Role),
		Slots:     slots,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ProfileResponse{Profile: toPbProfile(profile)}, nil
}

func (s *ProfileServer) GetProfile(ctx context.Context, in *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileService.GetProfile(ctx, lo.CoalesceOrEmpty(in.UserID, userID))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ProfileResponse{Profile: toPbProfile(profile)}, nil
}

func (s *ProfileServer) UpdateProfile(ctx context.Context, in *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileService.UpdateProfile(ctx, userID, auth.ProfileUpdate{
		FullName: in.FullName,
		Phone:    in.Phone,
		PhotoURL: in.PhotoURL,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ProfileResponse{Profile: toPbProfile(profile)}, nil
}

func (s *ProfileServer) SearchUsers(ctx context.Context, in *pb.SearchUsersRequest) (*pb.SearchUsersResponse, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileService.SearchDirectory(ctx, userID, in.Query)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchUsersResponse{
		Users: lo.Map(profiles, func(p domain.Profile, _ int) *pb.Profile { return toPbProfile(p) }),
	}, nil
}
