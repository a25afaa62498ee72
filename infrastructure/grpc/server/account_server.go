package server

import (
	"context"

	pb "timebank/api/v1"
	"timebank/errors"
	"timebank/services"
)

type AccountServer struct {
	pb.UnimplementedAccountServiceServer
	authService services.IAuthService
}

func NewAccountServer(authService services.IAuthService) *AccountServer {
	return &AccountServer{authService: authService}
}

func (s *AccountServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Register(in.Email, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: session.Token, UserID: session.UserID}, nil
}

func (s *AccountServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	session, err := s.authService.Login(in.Email, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: session.Token, UserID: session.UserID}, nil
}
