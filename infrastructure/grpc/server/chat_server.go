package server

import (
	"context"
	"log/slog"

	pb "timebank/api/v1"
	"timebank/auth"
	"timebank/domain"
	"timebank/errors"
	"timebank/services"

	"github.com/samber/lo"
)

// ChatServer exposes the conversation between the caller and one peer.
// The caller is always taken from the token, never from the request.
type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log               *slog.Logger
	conversationStore services.IConversationStore
	profileService    services.IProfileService
}

func NewChatServer(log *slog.Logger, conversationStore services.IConversationStore,
	profileService services.IProfileService) *ChatServer {
	return &ChatServer{log: log, conversationStore: conversationStore, profileService: profileService}
}

func (s *ChatServer) LoadConversation(ctx context.Context, req *pb.LoadConversationRequest) (*pb.ConversationResponse, error) {
	key, err := s.conversationWith(ctx, req.PeerID)
	if err != nil {
		return nil, err
	}
	messages, err := s.conversationStore.Load(ctx, key)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ConversationResponse{
		ConversationKey: string(key),
		Messages:        lo.Map(messages, func(m domain.Message, _ int) *pb.Message { return toPbMessage(m) }),
	}, nil
}

func (s *ChatServer) SendText(ctx context.Context, req *pb.SendTextRequest) (*pb.MessageResponse, error) {
	key, err := s.conversationWith(ctx, req.PeerID)
	if err != nil {
		return nil, err
	}
	userID, _ := auth.UserIDFromContext(ctx)
	message, err := s.conversationStore.AppendText(ctx, key, userID, req.Text)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{Message: toPbMessage(message)}, nil
}

func (s *ChatServer) SendVoice(ctx context.Context, req *pb.SendVoiceRequest) (*pb.MessageResponse, error) {
	key, err := s.conversationWith(ctx, req.PeerID)
	if err != nil {
		return nil, err
	}
	userID, _ := auth.UserIDFromContext(ctx)
	message, err := s.conversationStore.AppendVoice(ctx, key, userID, req.AudioData)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{Message: toPbMessage(message)}, nil
}

// conversationWith resolves the key of the caller and a peer that must have registered.
func (s *ChatServer) conversationWith(ctx context.Context, peerID string) (domain.ConversationKey, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if _, err = s.profileService.GetProfile(ctx, peerID); err != nil {
		s.log.Debug("Unknown chat peer", "user_id", userID, "peer_id", peerID, "error", err)
		return "", errors.MapToGRPCError(err)
	}
	return s.conversationStore.KeyFor(userID, peerID), nil
}
