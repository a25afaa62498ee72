package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	pb "timebank/api/v1"
	"timebank/auth"
	"timebank/capture"
	"timebank/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type client struct {
	log          *slog.Logger
	token        string
	accounts     pb.AccountServiceClient
	profiles     pb.ProfileServiceClient
	availability pb.AvailabilityServiceClient
	chat         pb.ChatServiceClient
	out          io.Writer
}

// slotFlags collects repeated --slot Day,HH:MM,HH:MM values.
type slotFlags []pb.Slot

func (s *slotFlags) String() string {
	return fmt.Sprint(*s)
}

func (s *slotFlags) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return fmt.Errorf("slot %q must be Day,HH:MM,HH:MM", value)
	}
	*s = append(*s, pb.Slot{Day: parts[0], StartTime: parts[1], EndTime: parts[2]})
	return nil
}

func (c *client) authorized(ctx context.Context) (context.Context, error) {
	if c.token == "" {
		return nil, fmt.Errorf("TIMEBANK_TOKEN is not set, run login first")
	}
	return auth.BearerToken(ctx, c.token), nil
}

func (c *client) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := c.accounts.Register(ctx, &pb.RegisterRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	c.printSession(resp)
	return nil
}

func (c *client) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := c.accounts.Login(ctx, &pb.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	c.printSession(resp)
	return nil
}

func (c *client) printSession(resp *pb.AuthResponse) {
	_, _ = fmt.Fprint(c.out, color.Green.Sprintf("user %s\n", resp.UserID))
	_, _ = fmt.Fprintf(c.out, "export TIMEBANK_TOKEN=%s\n", resp.Token)
}

// complete submits the registration form; the server checks every slot.
func (c *client) complete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	req := pb.CompleteRegistrationRequest{}
	var slots slotFlags
	fs.StringVar(&req.FullName, "name", "", "full name")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Email, "email", "", "contact email")
	fs.StringVar(&req.PhotoURL, "photo", "", "uploaded photo URL")
	fs.StringVar(&req.IDCardURL, "id-card", "", "uploaded ID card URL")
	fs.StringVar(&req.Role, "role", string(domain.RoleExecutive), "admin or executive")
	fs.Var(&slots, "slot", "availability slot Day,HH:MM,HH:MM (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, err := c.authorized(ctx)
	if err != nil {
		return err
	}
	req.Slots = slots

	resp, err := c.profiles.CompleteRegistration(ctx, &req)
	if err != nil {
		return err
	}
	c.printProfiles([]*pb.Profile{resp.Profile})
	c.printSlots(req.Slots)
	return nil
}

func (c *client) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	userID := fs.String("user", "", "user id, the caller when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, err := c.authorized(ctx)
	if err != nil {
		return err
	}
	resp, err := c.profiles.GetProfile(ctx, &pb.GetProfileRequest{UserID: *userID})
	if err != nil {
		return err
	}
	c.printProfiles([]*pb.Profile{resp.Profile})
	if resp.Profile.Role == string(domain.RoleExecutive) {
		slots, err := c.availability.GetAvailability(ctx, &pb.GetAvailabilityRequest{UserID: resp.Profile.ID})
		if err != nil {
			return err
		}
		c.printSlots(slots.Slots)
	}
	return nil
}

func (c *client) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	query := fs.String("query", "", "name or phone fragment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, err := c.authorized(ctx)
	if err != nil {
		return err
	}
	resp, err := c.profiles.SearchUsers(ctx, &pb.SearchUsersRequest{Query: *query})
	if err != nil {
		return err
	}
	c.printProfiles(resp.Users)
	return nil
}

func (c *client) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	peer := fs.String("peer", "", "the other participant's user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, err := c.authorized(ctx)
	if err != nil {
		return err
	}
	resp, err := c.chat.LoadConversation(ctx, &pb.LoadConversationRequest{PeerID: *peer})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(c.out, color.Cyan.Sprintf("conversation %s (%d messages)\n", resp.ConversationKey, len(resp.Messages)))
	c.printMessages(resp.Messages)
	return nil
}

func (c *client) text(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	peer := fs.String("peer", "", "the other participant's user id")
	text := fs.String("text", "", "message text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, err := c.authorized(ctx)
	if err != nil {
		return err
	}
	resp, err := c.chat.SendText(ctx, &pb.SendTextRequest{PeerID: *peer, Text: *text})
	if err != nil {
		return err
	}
	c.printMessages([]*pb.Message{resp.Message})
	return nil
}

// voice records the file through the capture lifecycle and sends it as one voice message.
func (c *client) voice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("voice", flag.ContinueOnError)
	peer := fs.String("peer", "", "the other participant's user id")
	file := fs.String("file", "", "audio file replayed as the capture source")
	chunkSize := fs.Int("chunk-size", 4096, "bytes per captured chunk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, err := c.authorized(ctx)
	if err != nil {
		return err
	}

	send := func(ctx context.Context, audioData string) (domain.Message, error) {
		resp, err := c.chat.SendVoice(ctx, &pb.SendVoiceRequest{PeerID: *peer, AudioData: audioData})
		if err != nil {
			return domain.Message{}, err
		}
		return domain.NewVoiceMessage(resp.Message.ID, resp.Message.SenderID, resp.Message.AudioData, resp.Message.Timestamp)
	}
	recorder := capture.NewRecorder(c.log, capture.FileDevice{Path: *file, ChunkSize: *chunkSize}, send)
	if err = recorder.Start(ctx); err != nil {
		return err
	}
	message, err := recorder.Stop(ctx)
	if err != nil {
		return err
	}
	audio, _ := message.AudioData()
	_, _ = fmt.Fprint(c.out, color.Green.Sprintf("voice message %s sent (%d bytes)\n", message.ID, len(audio)))
	return nil
}

func (c *client) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func (c *client) printProfiles(profiles []*pb.Profile) {
	table := c.newTable("ID", "Name", "Phone", "Email", "Role")
	for _, p := range profiles {
		table.Append([]string{p.ID, p.FullName, p.Phone, p.Email, p.Role})
	}
	table.Render()
}

func (c *client) printSlots(slots []pb.Slot) {
	table := c.newTable("#", "Day", "Start", "End")
	for i, s := range slots {
		table.Append([]string{fmt.Sprint(i), s.Day, s.StartTime, s.EndTime})
	}
	table.Render()
}

func (c *client) printMessages(messages []*pb.Message) {
	table := c.newTable("Time", "From", "Type", "Content")
	for _, m := range messages {
		content := lo.Ternary(m.Type == string(domain.VoiceMessage),
			fmt.Sprintf("[voice, %d bytes]", len(m.AudioData)), m.Text)
		table.Append([]string{m.Timestamp.Local().Format(time.DateTime), m.SenderID, m.Type, content})
	}
	table.Render()
}
