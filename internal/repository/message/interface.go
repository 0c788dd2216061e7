package message

import (
	"context"

	"github.com/blendchat/blendchat/internal/domain"
)

// MessageRepository persists message rows. Append is the only write; rows are
// never updated or deleted.
type MessageRepository interface {
	Append(ctx context.Context, message *domain.Message) error
	FindByChatID(ctx context.Context, chatID string) ([]domain.Message, error)
	CountByChatID(ctx context.Context, chatID string) (int64, error)
}
