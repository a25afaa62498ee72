package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	pb "timebank/api/v1"
	"timebank/auth"
	"timebank/domain"
	"timebank/errors"
	"timebank/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func callerContext(userID string) context.Context {
	return auth.WithIdentity(context.Background(), &auth.Claims{UserID: userID, Email: userID + "@example.com"})
}

func TestChatServer_SendText(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIConversationStore(ctrl)
	profiles := mocks.NewMockIProfileService(ctrl)
	srv := NewChatServer(slog.Default(), store, profiles)
	ctx := callerContext("alice")

	t.Run("should append as the caller", func(t *testing.T) {
		req := require.New(t)
		key := domain.KeyFor("alice", "bob")
		message, err := domain.NewTextMessage("m1", "alice", "hi", time.Now().UTC())
		req.NoError(err)

		profiles.EXPECT().GetProfile(ctx, "bob").Return(domain.Profile{ID: "bob"}, nil)
		store.EXPECT().KeyFor("alice", "bob").Return(key)
		store.EXPECT().AppendText(ctx, key, "alice", "hi").Return(message, nil)

		res, err := srv.SendText(ctx, &pb.SendTextRequest{PeerID: "bob", Text: "hi"})

		req.NoError(err)
		req.Equal("text", res.Message.Type)
		req.Equal("hi", res.Message.Text)
		req.Empty(res.Message.AudioData)
	})

	t.Run("should refuse an unknown peer", func(t *testing.T) {
		profiles.EXPECT().GetProfile(ctx, "ghost").Return(domain.Profile{}, errors.ErrProfileNotFound)
		store.EXPECT().AppendText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := srv.SendText(ctx, &pb.SendTextRequest{PeerID: "ghost", Text: "hi"})

		require.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("should map an empty message to InvalidArgument", func(t *testing.T) {
		key := domain.KeyFor("alice", "bob")
		profiles.EXPECT().GetProfile(ctx, "bob").Return(domain.Profile{ID: "bob"}, nil)
		store.EXPECT().KeyFor("alice", "bob").Return(key)
		store.EXPECT().AppendText(ctx, key, "alice", "   ").Return(domain.Message{}, errors.ErrEmptyMessage)

		_, err := srv.SendText(ctx, &pb.SendTextRequest{PeerID: "bob", Text: "   "})

		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("should map a storage failure to Unavailable", func(t *testing.T) {
		key := domain.KeyFor("alice", "bob")
		profiles.EXPECT().GetProfile(ctx, "bob").Return(domain.Profile{ID: "bob"}, nil)
		store.EXPECT().KeyFor("alice", "bob").Return(key)
		store.EXPECT().Load(ctx, key).Return(nil, &errors.PersistenceError{Op: "load", Key: key.StorageKey()})

		_, err := srv.LoadConversation(ctx, &pb.LoadConversationRequest{PeerID: "bob"})

		require.Equal(t, codes.Unavailable, status.Code(err))
	})
}

func TestChatServer_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := NewChatServer(slog.Default(), mocks.NewMockIConversationStore(ctrl), mocks.NewMockIProfileService(ctrl))

	_, err := srv.LoadConversation(context.Background(), &pb.LoadConversationRequest{PeerID: "bob"})

	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestChatServer_LoadConversation_BothVariants(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIConversationStore(ctrl)
	profiles := mocks.NewMockIProfileService(ctrl)
	srv := NewChatServer(slog.Default(), store, profiles)
	ctx := callerContext("bob")
	key := domain.KeyFor("alice", "bob")
	text, _ := domain.NewTextMessage("m1", "alice", "hello", time.Now().UTC())
	voice, _ := domain.NewVoiceMessage("m2", "bob", "data:audio/webm;base64,AQID", time.Now().UTC())

	profiles.EXPECT().GetProfile(ctx, "alice").Return(domain.Profile{ID: "alice"}, nil)
	store.EXPECT().KeyFor("bob", "alice").Return(key)
	store.EXPECT().Load(ctx, key).Return([]domain.Message{text, voice}, nil)

	res, err := srv.LoadConversation(ctx, &pb.LoadConversationRequest{PeerID: "alice"})

	req.NoError(err)
	req.Equal("alice-bob", res.ConversationKey)
	req.Len(res.Messages, 2)
	req.Equal("hello", res.Messages[0].Text)
	req.Equal("voice", res.Messages[1].Type)
	req.Equal("data:audio/webm;base64,AQID", res.Messages[1].AudioData)
}
