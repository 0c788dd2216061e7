// File: internal/services/chat/list.go
package chat

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/blendchat/blendchat/internal/domain"
)

// ListChatsByCreator returns the caller's own chats, most recently active
// first, without their message bodies.
func (s *service) ListChatsByCreator(ctx context.Context, creatorEmail string) ([]domain.Chat, error) {
	creatorEmail = domain.NormalizeEmail(creatorEmail)
	if creatorEmail == "" {
		return nil, NewValidationError("list_chats", "creator email is required")
	}

	chats, err := s.chatRepo.FindByCreator(ctx, creatorEmail)
	if err != nil {
		return nil, NewStorageError("list_chats", "could not list chats", err)
	}
	return chats, nil
}

// SearchChats filters the caller's chats by keyword over title and message
// text.
func (s *service) SearchChats(ctx context.Context, creatorEmail, keyword string) ([]domain.Chat, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return s.ListChatsByCreator(ctx, creatorEmail)
	}

	chats, err := s.ListChatsByCreator(ctx, creatorEmail)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Chat, 0, len(chats))
	for _, candidate := range chats {
		if strings.Contains(strings.ToLower(candidate.Title), keyword) {
			matches = append(matches, candidate)
			continue
		}
		messages, err := s.messageRepo.FindByChatID(ctx, candidate.ID)
		if err != nil {
			return nil, NewStorageError("search_chats", "could not load messages", err)
		}
		hit := lo.SomeBy(messages, func(m domain.Message) bool {
			return strings.Contains(strings.ToLower(m.Text), keyword)
		})
		if hit {
			matches = append(matches, candidate)
		}
	}
	return matches, nil
}
