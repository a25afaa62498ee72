// Package v1 holds the wire types and service descriptors of the timebank gRPC API.
// Messages travel as JSON (content subtype "json"), see codec.go.
package v1

import (
	"log/slog"
	"time"
)

const redacted = "[REDACTED]"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogValue keeps the password out of request logs.
func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", r.Email), slog.String("password", redacted))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", r.Email), slog.String("password", redacted))
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Slot is a weekly interval in its text form: "Monday", "09:00", "11:00".
type Slot struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url"`
	IDCardURL string    `json:"id_card_url"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CompleteRegistrationRequest struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url"`
	IDCardURL string `json:"id_card_url"`
	Role      string `json:"role"`
	Slots     []Slot `json:"slots"`
}

// GetProfileRequest reads the profile of UserID, or of the caller when empty.
type GetProfileRequest struct {
	UserID string `json:"user_id"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type SearchUsersRequest struct {
	Query string `json:"query"`
}

type SearchUsersResponse struct {
	Users []*Profile `json:"users"`
}

type AddSlotRequest struct {
	Slots []Slot `json:"slots"`
}

type RemoveSlotRequest struct {
	Slots []Slot `json:"slots"`
	Index int32  `json:"index"`
}

type UpdateSlotRequest struct {
	Slots []Slot `json:"slots"`
	Index int32  `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type SlotsResponse struct {
	Slots []Slot `json:"slots"`
}

// UpdateSlotResponse carries a rejected edit as data: Slots is then the unchanged input.
type UpdateSlotResponse struct {
	Slots    []Slot `json:"slots"`
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason,omitempty"`
}

// GetAvailabilityRequest reads the stored slots of UserID, or of the caller when empty.
type GetAvailabilityRequest struct {
	UserID string `json:"user_id"`
}

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Type      string    `json:"type"`
	Text      string    `json:"text,omitempty"`
	AudioData string    `json:"audio_data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type LoadConversationRequest struct {
	PeerID string `json:"peer_id"`
}

type ConversationResponse struct {
	ConversationKey string     `json:"conversation_key"`
	Messages        []*Message `json:"messages"`
}

type SendTextRequest struct {
	PeerID string `json:"peer_id"`
	Text   string `json:"text"`
}

type SendVoiceRequest struct {
	PeerID    string `json:"peer_id"`
	AudioData string `json:"audio_data"`
}

// LogValue logs the size of the recording, never the recording.
func (r SendVoiceRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("peer_id", r.PeerID), slog.Int("audio_data_bytes", len(r.AudioData)))
}

type MessageResponse struct {
	Message *Message `json:"message"`
}
