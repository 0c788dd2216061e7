package chat

import (
	"context"

	"github.com/blendchat/blendchat/internal/domain"
)

// ChatRepository persists chat records (without their message rows).
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) error
	FindByID(ctx context.Context, id string) (*domain.Chat, error)
	FindByCreator(ctx context.Context, creatorEmail string) ([]domain.Chat, error)
	TouchUpdatedAt(ctx context.Context, id string) error
	UpdateInsights(ctx context.Context, id string, insights domain.Insights) error
}
