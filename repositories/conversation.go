//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"timebank/contract"
	"timebank/domain"
	"timebank/errors"

	"github.com/samber/lo"
)

type IConversationRepository interface {
	Load(ctx context.Context, key domain.ConversationKey) ([]domain.Message, error)
	Save(ctx context.Context, key domain.ConversationKey, messages []domain.Message) error
}

// ConversationRepository keeps each conversation as one JSON document under "chat-{key}".
// The document is always read and written whole.
type ConversationRepository struct {
	store contract.KeyValueStore
	log   *slog.Logger
}

func NewConversationRepository(store contract.KeyValueStore, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{store: store, log: log}
}

// DiskMessage is the persisted record of a message.
// Exactly one of Text and AudioData is set, according to Type.
type DiskMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Type      string    `json:"type"`
	Text      string    `json:"text,omitempty"`
	AudioData string    `json:"audioData,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Load returns the log of a conversation; a conversation never written is empty.
func (c ConversationRepository) Load(ctx context.Context, key domain.ConversationKey) ([]domain.Message, error) {
	storageKey := key.StorageKey()
	raw, found, err := c.store.Get(ctx, storageKey)
	if err != nil {
		return nil, &errors.PersistenceError{Op: errors.OpLoad, Key: storageKey, Err: err}
	}
	if !found {
		return []domain.Message{}, nil
	}

	var records []DiskMessage
	if err = json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, &errors.PersistenceError{Op: errors.OpDecode, Key: storageKey, Err: err}
	}

	messages := make([]domain.Message, 0, len(records))
	for _, record := range records {
		message, err := toMessage(record)
		if err != nil {
			return nil, &errors.PersistenceError{Op: errors.OpDecode, Key: storageKey, Err: err}
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// Save replaces the whole log of a conversation.
func (c ConversationRepository) Save(ctx context.Context, key domain.ConversationKey, messages []domain.Message) error {
	storageKey := key.StorageKey()
	data, err := json.Marshal(lo.Map(messages, func(m domain.Message, _ int) DiskMessage {
		return fromMessage(m)
	}))
	if err != nil {
		return &errors.PersistenceError{Op: errors.OpEncode, Key: storageKey, Err: err}
	}
	if err = c.store.Set(ctx, storageKey, string(data)); err != nil {
		return &errors.PersistenceError{Op: errors.OpSave, Key: storageKey, Err: err}
	}
	c.log.Debug("Conversation saved", "conversation", string(key), "messages", len(messages))
	return nil
}

func fromMessage(message domain.Message) DiskMessage {
	record := DiskMessage{
		ID:        message.ID,
		SenderID:  message.SenderID,
		Type:      string(message.Type()),
		Timestamp: message.Timestamp,
	}
	switch p := message.Payload().(type) {
	case domain.TextPayload:
		record.Text = p.Text
	case domain.VoicePayload:
		record.AudioData = p.AudioData
	}
	return record
}

func toMessage(record DiskMessage) (domain.Message, error) {
	switch domain.MessageType(record.Type) {
	case domain.TextMessage:
		return domain.NewTextMessage(record.ID, record.SenderID, record.Text, record.Timestamp)
	case domain.VoiceMessage:
		return domain.NewVoiceMessage(record.ID, record.SenderID, record.AudioData, record.Timestamp)
	default:
		return domain.Message{}, fmt.Errorf("message %s has unknown type %q", record.ID, record.Type)
	}
}
