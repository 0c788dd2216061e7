// File: internal/services/chat/create.go
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/blendchat/blendchat/internal/domain"
	"github.com/blendchat/blendchat/internal/services/email"
)

// CreateChat opens a conversation: one generated id, one access token per
// participant (creator included), the creator's first message, and a
// best-effort invitation to every invitee. Invitation failures are logged
// per recipient and never abort the creation.
func (s *service) CreateChat(ctx context.Context, input CreateChatInput) (*domain.Chat, error) {
	creatorEmail := domain.NormalizeEmail(input.CreatorEmail)
	if creatorEmail == "" {
		return nil, NewValidationError("create_chat", "creator email is required")
	}
	if strings.TrimSpace(input.FirstMessage) == "" {
		return nil, NewValidationError("create_chat", "first message cannot be empty")
	}
	if len(input.FirstMessage) > s.config.MaxMessageLength {
		return nil, NewValidationError("create_chat", "first message exceeds maximum length")
	}

	invited := lo.Uniq(lo.FilterMap(input.InvitedEmails, func(raw string, _ int) (string, bool) {
		normalized := domain.NormalizeEmail(raw)
		return normalized, normalized != "" && normalized != creatorEmail
	}))
	if len(invited) > s.config.MaxInvitees {
		return nil, NewValidationError("create_chat", "too many invitees")
	}

	chatID, err := domain.NewChatID()
	if err != nil {
		return nil, NewStorageError("create_chat", "could not generate chat ID", err)
	}
	tokens, err := domain.BuildAccessTokens(creatorEmail, invited)
	if err != nil {
		return nil, NewStorageError("create_chat", "could not generate access tokens", err)
	}

	now := time.Now().UTC()
	chat := &domain.Chat{
		ID:            chatID,
		Title:         domain.TitleFromMessage(input.FirstMessage),
		CreatorEmail:  creatorEmail,
		CreatorName:   input.CreatorName,
		InvitedEmails: invited,
		AccessTokens:  tokens,
		IncludeGPT:    input.IncludeGPT,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(s.config.ChatTTL),
	}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, NewStorageError("create_chat", "could not create chat", err)
	}

	first := domain.NewUserMessage(chatID, input.FirstMessage, creatorEmail, input.CreatorName,
		classifySentiment(input.FirstMessage))
	if err := s.messageRepo.Append(ctx, &first); err != nil {
		return nil, NewStorageError("create_chat", "could not store first message", err)
	}
	chat.Messages = []domain.Message{first}

	s.logger.Info("chat created",
		"chat_id", chatID,
		"invitees", len(invited),
		"include_gpt", input.IncludeGPT,
	)

	s.sendInvitations(ctx, chat, input.FirstMessage)
	return chat, nil
}

func (s *service) sendInvitations(ctx context.Context, chat *domain.Chat, firstMessage string) {
	if s.emailService == nil || len(chat.InvitedEmails) == 0 {
		return
	}
	for _, recipient := range chat.InvitedEmails {
		inv := email.Invitation{
			ChatID:       chat.ID,
			Recipient:    recipient,
			AccessToken:  chat.AccessTokens[recipient],
			CreatorName:  chat.CreatorName,
			CreatorEmail: chat.CreatorEmail,
			FirstMessage: firstMessage,
		}
		if err := s.emailService.SendInvitation(ctx, inv); err != nil {
			s.logger.Warn("invitation not delivered",
				"chat_id", chat.ID,
				"recipient", recipient,
				"error", err.Error(),
			)
		}
	}
}
