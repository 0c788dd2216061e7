// File: internal/services/chat/interface.go
package chat

import (
	"context"

	"github.com/blendchat/blendchat/internal/domain"
)

// CreateChatInput is everything needed to open a conversation.
type CreateChatInput struct {
	CreatorEmail  string
	CreatorName   string
	InvitedEmails []string
	FirstMessage  string
	IncludeGPT    bool
}

// AppendMessageInput is one incoming turn. Kind distinguishes client messages
// from bridge deliveries; SenderAI is never accepted from callers.
//
// AccessToken is the sender's per-chat token and is checked for user-kind
// messages on access-controlled chats. Bridge deliveries (SenderEmail kind)
// authenticate with the shared bridge key instead, but the sender must still
// be a participant.
type AppendMessageInput struct {
	ChatID      string
	Text        string
	SenderEmail string
	SenderName  string
	AccessToken string
	Kind        domain.SenderKind
}

// AppendResult reports what one append produced. AIMessage is nil when the
// chat has no assistant or the assistant was not triggered.
type AppendResult struct {
	Message   domain.Message
	AIMessage *domain.Message
	// AIDegraded is set when the assistant reply is the configured fallback
	// because the completion service failed.
	AIDegraded bool
}

// Service is the chat session core: creation, access-checked reads and the
// append path with its optional AI turn.
type Service interface {
	CreateChat(ctx context.Context, input CreateChatInput) (*domain.Chat, error)
	GetChat(ctx context.Context, chatID, email, token string) (*domain.Chat, error)
	AppendMessage(ctx context.Context, input AppendMessageInput) (*AppendResult, error)
	ListChatsByCreator(ctx context.Context, creatorEmail string) ([]domain.Chat, error)
	SearchChats(ctx context.Context, creatorEmail, keyword string) ([]domain.Chat, error)
}
