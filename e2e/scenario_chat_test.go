package e2e

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	pb "timebank/api/v1"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testChatSuite struct {
	BaseGrpcSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, &testChatSuite{})
}

func (s *testChatSuite) TestExecutiveAndAdminExchangeMessages() {
	run := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	var executive, admin *pb.AuthResponse

	s.Run("Step 1: Register both accounts", func() {
		s.WithMaster("Register executive and admin", func(ctx context.Context, c Clients) {
			var err error
			executive, err = c.Accounts.Register(ctx, &pb.RegisterRequest{
				Email: fmt.Sprintf("exec-%s@e2e.test", run), Password: "Correct-horse-battery1",
			})
			s.Require().NoError(err)
			admin, err = c.Accounts.Register(ctx, &pb.RegisterRequest{
				Email: fmt.Sprintf("admin-%s@e2e.test", run), Password: "Correct-horse-battery1",
			})
			s.Require().NoError(err)
		})
	})

	s.Run("Step 2: Build the availability form", func() {
		s.WithMaster("Slot edits are validated server side", func(ctx context.Context, c Clients) {
			ctx = As(ctx, executive)
			added, err := c.Availability.AddSlot(ctx, &pb.AddSlotRequest{})
			s.Require().NoError(err)
			s.Require().Equal([]pb.Slot{{Day: "Monday", StartTime: "09:00", EndTime: "11:00"}}, added.Slots)

			edit, err := c.Availability.UpdateSlot(ctx, &pb.UpdateSlotRequest{
				Slots: added.Slots, Index: 0, Field: "endTime", Value: "12:30",
			})
			s.Require().NoError(err)
			s.Require().True(edit.Rejected)
			s.Require().Equal("Maximum 2 hours per day allowed", edit.Reason)
			s.Require().Equal(added.Slots, edit.Slots)
		})
	})

	s.Run("Step 3: Complete both registrations", func() {
		s.WithMaster("Executive with one slot, admin without", func(ctx context.Context, c Clients) {
			_, err := c.Profiles.CompleteRegistration(As(ctx, executive), &pb.CompleteRegistrationRequest{
				FullName: "Exec " + run, Phone: "+33612345678", Email: fmt.Sprintf("exec-%s@e2e.test", run),
				PhotoURL: "https://cdn.example.com/p.jpg", IDCardURL: "https://cdn.example.com/id.jpg",
				Role: "executive", Slots: []pb.Slot{{Day: "Tuesday", StartTime: "14:00", EndTime: "15:30"}},
			})
			s.Require().NoError(err)
			_, err = c.Profiles.CompleteRegistration(As(ctx, admin), &pb.CompleteRegistrationRequest{
				FullName: "Admin " + run, Phone: "+33698765432", Email: fmt.Sprintf("admin-%s@e2e.test", run),
				PhotoURL: "https://cdn.example.com/a.jpg", IDCardURL: "https://cdn.example.com/aid.jpg",
				Role: "admin",
			})
			s.Require().NoError(err)
		})
	})

	s.Run("Step 4: Find the executive in the directory", func() {
		s.WithMaster("Search by name fragment", func(ctx context.Context, c Clients) {
			resp, err := c.Profiles.SearchUsers(As(ctx, admin), &pb.SearchUsersRequest{Query: "exec " + run})
			s.Require().NoError(err)
			s.Require().Len(resp.Users, 1)
			s.Require().Equal(executive.UserID, resp.Users[0].ID)
		})
	})

	s.Run("Step 5: Exchange text and voice", func() {
		s.WithMaster("Both sides read the same log", func(ctx context.Context, c Clients) {
			_, err := c.Chat.SendText(As(ctx, admin), &pb.SendTextRequest{PeerID: executive.UserID, Text: "  Are you free on Tuesday?  "})
			s.Require().NoError(err)

			_, err = c.Chat.SendText(As(ctx, executive), &pb.SendTextRequest{PeerID: admin.UserID, Text: "   "})
			s.Require().Equal(codes.InvalidArgument, status.Code(err))

			audio := "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte{0x1A, 0x45, 0xDF, 0xA3})
			_, err = c.Chat.SendVoice(As(ctx, executive), &pb.SendVoiceRequest{PeerID: admin.UserID, AudioData: audio})
			s.Require().NoError(err)

			fromAdmin, err := c.Chat.LoadConversation(As(ctx, admin), &pb.LoadConversationRequest{PeerID: executive.UserID})
			s.Require().NoError(err)
			fromExecutive, err := c.Chat.LoadConversation(As(ctx, executive), &pb.LoadConversationRequest{PeerID: admin.UserID})
			s.Require().NoError(err)

			s.Require().Equal(fromAdmin.ConversationKey, fromExecutive.ConversationKey)
			s.Require().Len(fromAdmin.Messages, 2)
			s.Require().Equal("Are you free on Tuesday?", fromAdmin.Messages[0].Text)
			s.Require().Equal("voice", fromAdmin.Messages[1].Type)
			s.Require().Equal(audio, fromAdmin.Messages[1].AudioData)
		})
	})
}

func (s *testChatSuite) TestProtectedMethodsRequireToken() {
	s.WithMaster("No bearer token", func(ctx context.Context, c Clients) {
		_, err := c.Chat.LoadConversation(ctx, &pb.LoadConversationRequest{PeerID: "anyone"})
		s.Require().Equal(codes.Unauthenticated, status.Code(err))
	})
}

