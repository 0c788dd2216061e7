// File: internal/services/chat/access.go
package chat

import (
	"context"
	"errors"

	"github.com/blendchat/blendchat/internal/domain"
	chatrepo "github.com/blendchat/blendchat/internal/repository/chat"
)

// GetChat loads a chat and enforces the link-token access check.
//
// An unknown id is NOT_FOUND; a chat with a token map and a missing or wrong
// (email, token) pair is UNAUTHORIZED. The two are never conflated, and an
// unauthorized caller learns nothing beyond the fact that the chat exists.
func (s *service) GetChat(ctx context.Context, chatID, callerEmail, token string) (*domain.Chat, error) {
	if chatID == "" {
		return nil, NewValidationError("get_chat", "chat ID is required")
	}

	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, NewNotFoundError(chatID)
		}
		return nil, NewStorageError("get_chat", "could not load chat", err)
	}

	if err := verifyAccess(chat, callerEmail, token); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, NewStorageError("get_chat", "could not load messages", err)
	}
	chat.Messages = messages
	return chat, nil
}

// verifyAccess is the single-shot access check. Chats created without a
// token map are open.
func verifyAccess(chat *domain.Chat, callerEmail, token string) error {
	if !chat.HasAccessControl() {
		return nil
	}
	if callerEmail == "" || token == "" {
		return NewUnauthorizedError(chat.ID)
	}
	expected, ok := chat.AccessTokens[domain.NormalizeEmail(callerEmail)]
	if !ok || !domain.TokenEqual(expected, token) {
		return NewUnauthorizedError(chat.ID)
	}
	return nil
}
