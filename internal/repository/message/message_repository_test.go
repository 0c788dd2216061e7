package message

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blendchat/blendchat/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "messages.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))
	return db
}

func Test_MessageRepository_AppendAndFetchInOrder(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t))
	ctx := context.Background()
	chatID := "chat-1"

	at := time.Now().UTC()
	first := domain.NewUserMessage(chatID, "hello", "a@x.com", "Alice", domain.SentimentNeutral)
	first.CreatedAt = at
	second := domain.NewEmailMessage(chatID, "hi from mail", "b@x.com", "Bob")
	second.CreatedAt = at.Add(time.Minute)
	third := domain.NewAIMessage(chatID, "hello both")
	third.CreatedAt = at.Add(2 * time.Minute)

	for _, m := range []domain.Message{first, second, third} {
		msg := m
		req.NoError(repo.Append(ctx, &msg))
	}

	fetched, err := repo.FindByChatID(ctx, chatID)
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal("hello", fetched[0].Text)
	req.Equal(domain.SenderEmail, fetched[1].Sender.Kind())
	req.Equal(domain.SenderAI, fetched[2].Sender.Kind())
	req.Equal("b@x.com", domain.SenderEmailOf(fetched[1]))

	count, err := repo.CountByChatID(ctx, chatID)
	req.NoError(err)
	req.EqualValues(3, count)
}

func Test_MessageRepository_ConcurrentAppendsAllSurvive(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t))
	ctx := context.Background()
	chatID := "chat-race"

	seed := domain.NewUserMessage(chatID, "first", "a@x.com", "Alice", "")
	req.NoError(repo.Append(ctx, &seed))

	const k = 10
	var wg sync.WaitGroup
	errs := make(chan error, k)
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			msg := domain.NewUserMessage(chatID, fmt.Sprintf("concurrent %d", n), "b@x.com", "Bob", "")
			errs <- repo.Append(ctx, &msg)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	count, err := repo.CountByChatID(ctx, chatID)
	req.NoError(err)
	req.EqualValues(1+k, count)
}

func Test_MessageRepository_RejectsInvalidInput(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestDB(t))
	ctx := context.Background()

	empty := domain.NewUserMessage("chat-1", "   ", "a@x.com", "Alice", "")
	req.Error(repo.Append(ctx, &empty))

	noChat := domain.NewUserMessage("", "text", "a@x.com", "Alice", "")
	req.Error(repo.Append(ctx, &noChat))

	noSender := domain.Message{ID: "id", ChatID: "chat-1", Text: "text", CreatedAt: time.Now()}
	req.Error(repo.Append(ctx, &noSender))
}
