package test

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net"
	"testing"
	"time"

	pb "timebank/api/v1"
	"timebank/auth"
	"timebank/infrastructure/grpc/server"
	"timebank/infrastructure/search"
	"timebank/infrastructure/storage"
	"timebank/repositories"
	"timebank/services"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpc3 "github.com/mama165/sdk-go/grpc"
)

type clients struct {
	accounts     pb.AccountServiceClient
	profiles     pb.ProfileServiceClient
	availability pb.AvailabilityServiceClient
	chat         pb.ChatServiceClient
}

// startServer wires the whole server in memory and serves it over a bufconn listener.
func startServer(t *testing.T) clients {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	auth.SetSigningKey("integration-secret-integration-secret")

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	index, err := search.NewDirectoryIndex(bluge.InMemoryOnlyConfig(), log)
	req.NoError(err)
	t.Cleanup(func() { _ = index.Close() })

	store := storage.NewMemoryStore()
	userRepository := repositories.NewUserRepository(db)
	availabilityRepository := repositories.NewAvailabilityRepository(store, log)
	conversationRepository := repositories.NewConversationRepository(store, log)

	profileService := services.NewProfileService(log, userRepository, availabilityRepository, index, 10)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log), auth.AuthInterceptor))
	pb.RegisterAccountServiceServer(s, server.NewAccountServer(services.NewAuthService(userRepository, time.Hour)))
	pb.RegisterProfileServiceServer(s, server.NewProfileServer(profileService))
	pb.RegisterAvailabilityServiceServer(s, server.NewAvailabilityServer(services.NewAvailabilityService(log, availabilityRepository)))
	pb.RegisterChatServiceServer(s, server.NewChatServer(log, services.NewConversationStore(log, conversationRepository), profileService))

	listener := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	t.Cleanup(func() { _ = conn.Close() })

	return clients{
		accounts:     pb.NewAccountServiceClient(conn),
		profiles:     pb.NewProfileServiceClient(conn),
		availability: pb.NewAvailabilityServiceClient(conn),
		chat:         pb.NewChatServiceClient(conn),
	}
}

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	c := startServer(t)

	// 1. Accounts
	alice, err := c.accounts.Register(ctx, &pb.RegisterRequest{Email: "alice@example.com", Password: "Correct-horse-battery1"})
	req.NoError(err)
	_, err = c.accounts.Register(ctx, &pb.RegisterRequest{Email: "bob@example.com", Password: "Correct-horse-battery1"})
	req.NoError(err)
	bob, err := c.accounts.Login(ctx, &pb.LoginRequest{Email: "BOB@example.com", Password: "Correct-horse-battery1"})
	req.NoError(err)
	_, err = c.accounts.Login(ctx, &pb.LoginRequest{Email: "bob@example.com", Password: "Wrong-password-here1"})
	req.Equal(codes.Unauthenticated, status.Code(err))

	asAlice := auth.BearerToken(ctx, alice.Token)
	asBob := auth.BearerToken(ctx, bob.Token)

	// 2. Availability form: one default slot, a rejected edit, an accepted edit
	form, err := c.availability.AddSlot(asAlice, &pb.AddSlotRequest{})
	req.NoError(err)
	rejected, err := c.availability.UpdateSlot(asAlice, &pb.UpdateSlotRequest{Slots: form.Slots, Field: "startTime", Value: "11:00"})
	req.NoError(err)
	req.True(rejected.Rejected)
	req.Equal("End time must be after start time", rejected.Reason)
	accepted, err := c.availability.UpdateSlot(asAlice, &pb.UpdateSlotRequest{Slots: form.Slots, Field: "day", Value: "Wednesday"})
	req.NoError(err)
	req.False(accepted.Rejected)
	_, err = c.availability.RemoveSlot(asAlice, &pb.RemoveSlotRequest{Slots: accepted.Slots, Index: 3})
	req.Equal(codes.InvalidArgument, status.Code(err))

	// 3. Registrations
	_, err = c.profiles.CompleteRegistration(asAlice, &pb.CompleteRegistrationRequest{
		FullName: "Alice Martin", Phone: "+33612345678", Email: "alice@example.com",
		PhotoURL: "https://cdn.example.com/alice.jpg", IDCardURL: "https://cdn.example.com/alice-id.jpg",
		Role: "executive", Slots: accepted.Slots,
	})
	req.NoError(err)
	_, err = c.profiles.CompleteRegistration(asBob, &pb.CompleteRegistrationRequest{
		FullName: "Bob Durand", Phone: "+33698765432", Email: "bob@example.com",
		PhotoURL: "https://cdn.example.com/bob.jpg", IDCardURL: "https://cdn.example.com/bob-id.jpg",
		Role: "executive",
	})
	req.Equal(codes.InvalidArgument, status.Code(err), "an executive must declare a slot")
	_, err = c.profiles.CompleteRegistration(asBob, &pb.CompleteRegistrationRequest{
		FullName: "Bob Durand", Phone: "+33698765432", Email: "bob@example.com",
		PhotoURL: "https://cdn.example.com/bob.jpg", IDCardURL: "https://cdn.example.com/bob-id.jpg",
		Role: "admin",
	})
	req.NoError(err)

	stored, err := c.availability.GetAvailability(asBob, &pb.GetAvailabilityRequest{UserID: alice.UserID})
	req.NoError(err)
	req.Equal([]pb.Slot{{Day: "Wednesday", StartTime: "09:00", EndTime: "11:00"}}, stored.Slots)

	// 4. Directory: the caller never finds themselves
	found, err := c.profiles.SearchUsers(asBob, &pb.SearchUsersRequest{Query: "mart"})
	req.NoError(err)
	req.Len(found.Users, 1)
	req.Equal(alice.UserID, found.Users[0].ID)
	everyone, err := c.profiles.SearchUsers(asAlice, &pb.SearchUsersRequest{})
	req.NoError(err)
	req.Len(everyone.Users, 1)
	req.Equal(bob.UserID, everyone.Users[0].ID)

	// 5. Conversation
	_, err = c.chat.SendText(asAlice, &pb.SendTextRequest{PeerID: bob.UserID, Text: " hello Bob "})
	req.NoError(err)
	audio := "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte("voice-bytes"))
	_, err = c.chat.SendVoice(asBob, &pb.SendVoiceRequest{PeerID: alice.UserID, AudioData: audio})
	req.NoError(err)
	_, err = c.chat.SendVoice(asBob, &pb.SendVoiceRequest{PeerID: alice.UserID, AudioData: "data:text/plain;base64,aGk="})
	req.Equal(codes.InvalidArgument, status.Code(err))
	_, err = c.chat.SendText(asBob, &pb.SendTextRequest{PeerID: "ghost", Text: "anyone?"})
	req.Equal(codes.NotFound, status.Code(err))

	conversation, err := c.chat.LoadConversation(asAlice, &pb.LoadConversationRequest{PeerID: bob.UserID})
	req.NoError(err)
	req.Len(conversation.Messages, 2)
	req.Equal("hello Bob", conversation.Messages[0].Text)
	req.Equal(alice.UserID, conversation.Messages[0].SenderID)
	req.Equal("voice", conversation.Messages[1].Type)
	req.Equal(audio, conversation.Messages[1].AudioData)

	mirrored, err := c.chat.LoadConversation(asBob, &pb.LoadConversationRequest{PeerID: alice.UserID})
	req.NoError(err)
	req.Equal(conversation.ConversationKey, mirrored.ConversationKey)
	req.Equal(conversation.Messages, mirrored.Messages)
}

func Test_Unauthenticated(t *testing.T) {
	c := startServer(t)
	_, err := c.profiles.SearchUsers(context.Background(), &pb.SearchUsersRequest{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.chat.LoadConversation(auth.BearerToken(context.Background(), "not-a-jwt"), &pb.LoadConversationRequest{PeerID: "x"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}
