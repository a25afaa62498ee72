// Package domain contains core concepts of the time-bank.
// This file defines chat messages and conversation keys.
// Messages are immutable and their payload always matches their type.
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"timebank/errors"
)

type MessageType string

const (
	TextMessage  MessageType = "text"
	VoiceMessage MessageType = "voice"
)

// Payload is either a TextPayload or a VoicePayload.
type Payload interface {
	Type() MessageType
	isPayload()
}

type TextPayload struct {
	Text string
}

func (TextPayload) Type() MessageType { return TextMessage }
func (TextPayload) isPayload()        {}

// VoicePayload embeds the encoded recording (a data URL) directly in the log.
type VoicePayload struct {
	AudioData string
}

func (VoicePayload) Type() MessageType { return VoiceMessage }
func (VoicePayload) isPayload()        {}

// Message represents an immutable chat event.
type Message struct {
	ID        string
	SenderID  string
	Timestamp time.Time
	payload   Payload
}

func NewTextMessage(id, senderID, text string, at time.Time) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, errors.ErrEmptyMessage
	}
	return Message{ID: id, SenderID: senderID, Timestamp: at, payload: TextPayload{Text: text}}, nil
}

func NewVoiceMessage(id, senderID, audioData string, at time.Time) (Message, error) {
	if audioData == "" {
		return Message{}, errors.ErrInvalidAudioPayload
	}
	return Message{ID: id, SenderID: senderID, Timestamp: at, payload: VoicePayload{AudioData: audioData}}, nil
}

func (m Message) Type() MessageType {
	if m.payload == nil {
		return ""
	}
	return m.payload.Type()
}

func (m Message) Payload() Payload {
	return m.payload
}

// Text returns the text of a text message; ok is false for any other type.
func (m Message) Text() (text string, ok bool) {
	p, ok := m.payload.(TextPayload)
	return p.Text, ok
}

// AudioData returns the encoded recording of a voice message; ok is false for any other type.
func (m Message) AudioData() (audioData string, ok bool) {
	p, ok := m.payload.(VoicePayload)
	return p.AudioData, ok
}

// ConversationKey identifies the log shared by two participants.
type ConversationKey string

// KeyFor is symmetric: KeyFor(a, b) == KeyFor(b, a).
func KeyFor(participantA, participantB string) ConversationKey {
	ids := []string{participantA, participantB}
	sort.Strings(ids)
	return ConversationKey(strings.Join(ids, "-"))
}

// StorageKey is the key of the persisted log in the key-value store.
func (k ConversationKey) StorageKey() string {
	return fmt.Sprintf("chat-%s", string(k))
}
