//go:generate go run go.uber.org/mock/mockgen -source=conversation_service.go -destination=../mocks/mock_conversation_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"timebank/domain"
	"timebank/domain/mimetypes"
	"timebank/errors"
	"timebank/repositories"

	"github.com/google/uuid"
)

type IConversationStore interface {
	KeyFor(participantA, participantB string) domain.ConversationKey
	Load(ctx context.Context, key domain.ConversationKey) ([]domain.Message, error)
	AppendText(ctx context.Context, key domain.ConversationKey, senderID, text string) (domain.Message, error)
	AppendVoice(ctx context.Context, key domain.ConversationKey, senderID, audioData string) (domain.Message, error)
}

// ConversationStore appends to two-party logs with a whole-log read-modify-write.
// Appends are not serialized: two writers racing on the same key lose one append.
type ConversationStore struct {
	log        *slog.Logger
	repository repositories.IConversationRepository
	now        func() time.Time
	newID      func() (uuid.UUID, error)
}

func NewConversationStore(log *slog.Logger, repository repositories.IConversationRepository) *ConversationStore {
	return &ConversationStore{
		log:        log,
		repository: repository,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewV7,
	}
}

func (c *ConversationStore) KeyFor(participantA, participantB string) domain.ConversationKey {
	return domain.KeyFor(participantA, participantB)
}

func (c *ConversationStore) Load(ctx context.Context, key domain.ConversationKey) ([]domain.Message, error) {
	messages, err := c.repository.Load(ctx, key)
	if err != nil {
		c.log.Error("Unable to load conversation", "conversation", string(key), "error", err)
		return nil, err
	}
	return messages, nil
}

// AppendText stores the trimmed text; blank input is refused and nothing is written.
func (c *ConversationStore) AppendText(ctx context.Context, key domain.ConversationKey, senderID, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	id, err := c.newID()
	if err != nil {
		return domain.Message{}, fmt.Errorf("message id: %w", err)
	}
	message, err := domain.NewTextMessage(id.String(), senderID, text, c.now())
	if err != nil {
		return domain.Message{}, err
	}
	return c.append(ctx, key, message)
}

// AppendVoice embeds the audio data URL in the log itself.
func (c *ConversationStore) AppendVoice(ctx context.Context, key domain.ConversationKey, senderID, audioData string) (domain.Message, error) {
	mime, _, err := mimetypes.ParseDataURL(audioData)
	if err != nil {
		return domain.Message{}, err
	}
	id, err := c.newID()
	if err != nil {
		return domain.Message{}, fmt.Errorf("message id: %w", err)
	}
	message, err := domain.NewVoiceMessage(id.String(), senderID, audioData, c.now())
	if err != nil {
		return domain.Message{}, err
	}
	c.log.Debug("Voice message received", "conversation", string(key), "mime", string(mime), "size", len(audioData))
	return c.append(ctx, key, message)
}

func (c *ConversationStore) append(ctx context.Context, key domain.ConversationKey, message domain.Message) (domain.Message, error) {
	messages, err := c.repository.Load(ctx, key)
	if err != nil {
		return domain.Message{}, err
	}
	messages = append(messages, message)
	if err = c.repository.Save(ctx, key, messages); err != nil {
		c.log.Error("Message not persisted", "conversation", string(key), "message_id", message.ID, "error", err)
		return domain.Message{}, err
	}
	c.log.Debug("Message appended", "conversation", string(key), "message_id", message.ID,
		"type", string(message.Type()), "length", len(messages))
	return message, nil
}
