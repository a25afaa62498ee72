package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"timebank/domain"
	"timebank/errors"
	"timebank/infrastructure/storage"

	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	getErr error
	setErr error
	value  string
}

func (b brokenStore) Get(context.Context, string) (string, bool, error) {
	if b.getErr != nil {
		return "", false, b.getErr
	}
	return b.value, b.value != "", nil
}

func (b brokenStore) Set(context.Context, string, string) error {
	return b.setErr
}

func Test_Conversation_Load_Unknown_Is_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(storage.NewMemoryStore(), slog.Default())

	messages, err := repository.Load(context.Background(), domain.KeyFor("alice", "bob"))

	req.NoError(err)
	req.NotNil(messages)
	req.Empty(messages)
}

func Test_Conversation_Save_And_Load_Both_Variants(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repository := NewConversationRepository(store, slog.Default())
	key := domain.KeyFor("alice", "bob")
	at := time.Now().UTC()

	text, err := domain.NewTextMessage("m1", "alice", "hi", at)
	req.NoError(err)
	voice, err := domain.NewVoiceMessage("m2", "bob", "data:audio/webm;base64,AQIDBA==", at.Add(time.Second))
	req.NoError(err)

	req.NoError(repository.Save(ctx, key, []domain.Message{text, voice}))

	raw, found, err := store.Get(ctx, "chat-alice-bob")
	req.NoError(err)
	req.True(found)
	req.Contains(raw, `"type":"text"`)
	req.Contains(raw, `"audioData":"data:audio/webm;base64,AQIDBA=="`)
	req.NotContains(raw, `"text":""`)

	loaded, err := repository.Load(ctx, key)
	req.NoError(err)
	req.Len(loaded, 2)
	req.Equal(domain.TextMessage, loaded[0].Type())
	req.Equal(domain.VoiceMessage, loaded[1].Type())
	req.Equal("alice", loaded[0].SenderID)
	req.True(at.Equal(loaded[0].Timestamp))
}

func Test_Conversation_Reads_Browser_Records(t *testing.T) {
	req := require.New(t)
	store := storage.NewMemoryStore()
	ctx := context.Background()
	req.NoError(store.Set(ctx, "chat-1717-1718", `[
		{"id":"1718000000001","senderId":"1717","text":"hello","type":"text","timestamp":"2024-06-10T08:00:00.000Z"},
		{"id":"1718000000002","senderId":"1718","audioData":"data:audio/webm;base64,AQID","type":"voice","timestamp":"2024-06-10T08:00:05.000Z"}
	]`))
	repository := NewConversationRepository(store, slog.Default())

	messages, err := repository.Load(ctx, domain.KeyFor("1718", "1717"))

	req.NoError(err)
	req.Len(messages, 2)
	text, ok := messages[0].Text()
	req.True(ok)
	req.Equal("hello", text)
	audio, ok := messages[1].AudioData()
	req.True(ok)
	req.Equal("data:audio/webm;base64,AQID", audio)
}

func Test_Conversation_Persistence_Errors(t *testing.T) {
	ctx := context.Background()
	key := domain.KeyFor("a", "b")

	t.Run("should wrap a failing read", func(t *testing.T) {
		req := require.New(t)
		repository := NewConversationRepository(brokenStore{getErr: fmt.Errorf("disk gone")}, slog.Default())

		_, err := repository.Load(ctx, key)

		req.True(errors.IsPersistence(err))
		req.False(errors.IsCorrupt(err))
		req.ErrorContains(err, "disk gone")
	})

	t.Run("should wrap a failing write", func(t *testing.T) {
		req := require.New(t)
		repository := NewConversationRepository(brokenStore{setErr: fmt.Errorf("read only")}, slog.Default())

		err := repository.Save(ctx, key, nil)

		req.True(errors.IsPersistence(err))
	})

	t.Run("should reject a corrupt log", func(t *testing.T) {
		req := require.New(t)
		repository := NewConversationRepository(brokenStore{value: `[{"id":"x","type":"sticker"}]`}, slog.Default())

		_, err := repository.Load(ctx, key)

		req.True(errors.IsPersistence(err))
		req.True(errors.IsCorrupt(err))
		req.ErrorContains(err, "unknown type")
	})
}
