// File: internal/services/chat/append.go
package chat

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/samber/lo"

	"github.com/blendchat/blendchat/internal/domain"
	chatrepo "github.com/blendchat/blendchat/internal/repository/chat"
	"github.com/blendchat/blendchat/internal/services/ai"
)

// AppendMessage stores one incoming turn and, when the chat has its
// assistant enabled, produces the AI turn afterwards.
//
// The caller's message is durable before the completion call starts, so an
// AI failure can never lose it; in that case the configured fallback text is
// appended instead and the append still reports success.
func (s *service) AppendMessage(ctx context.Context, input AppendMessageInput) (*AppendResult, error) {
	if input.ChatID == "" {
		return nil, NewValidationError("append", "chat ID is required")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, NewValidationError("append", "message text cannot be empty")
	}
	if len(input.Text) > s.config.MaxMessageLength {
		return nil, NewValidationError("append", "message text exceeds maximum length")
	}

	chat, err := s.chatRepo.FindByID(ctx, input.ChatID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, NewNotFoundError(input.ChatID)
		}
		return nil, NewStorageError("append", "could not load chat", err)
	}

	var msg domain.Message
	switch input.Kind {
	case domain.SenderEmail:
		// Bridge deliveries are authenticated by the shared bridge key, but
		// the reply must come from someone who holds a seat in the chat.
		if chat.HasAccessControl() && !chat.IsParticipant(input.SenderEmail) {
			return nil, NewUnauthorizedError(chat.ID)
		}
		msg = domain.NewEmailMessage(chat.ID, input.Text, input.SenderEmail, input.SenderName)
	case domain.SenderUser, "":
		if err := verifyAccess(chat, input.SenderEmail, input.AccessToken); err != nil {
			return nil, err
		}
		msg = domain.NewUserMessage(chat.ID, input.Text, input.SenderEmail, input.SenderName,
			classifySentiment(input.Text))
	default:
		return nil, NewValidationError("append", "sender kind must be user or email")
	}

	if err := s.messageRepo.Append(ctx, &msg); err != nil {
		return nil, NewStorageError("append", "could not store message", err)
	}
	if err := s.chatRepo.TouchUpdatedAt(ctx, chat.ID); err != nil {
		s.logger.Warn("could not advance chat timestamp", "chat_id", chat.ID, "error", err.Error())
	}

	result := &AppendResult{Message: msg}

	if chat.IncludeGPT && s.aiService != nil {
		aiMsg, degraded := s.produceAITurn(ctx, chat, msg)
		if aiMsg != nil {
			result.AIMessage = aiMsg
			result.AIDegraded = degraded
		}
	}

	s.maybeAnalyze(ctx, chat.ID)
	return result, nil
}

// produceAITurn generates and appends the assistant reply. Failures of the
// completion service degrade to the fallback text; failures of the store are
// logged and swallowed, because the user's own message is already durable.
func (s *service) produceAITurn(ctx context.Context, chat *domain.Chat, trigger domain.Message) (*domain.Message, bool) {
	history, err := s.recentHistory(ctx, chat.ID, trigger.ID)
	if err != nil {
		s.logger.Warn("could not load history for AI turn", "chat_id", chat.ID, "error", err.Error())
		history = nil
	}

	degraded := false
	reply, err := s.aiService.GenerateReply(ctx, history, trigger.Text)
	if err != nil {
		s.logger.Error("AI turn failed, appending fallback",
			"chat_id", chat.ID,
			"error", err.Error(),
		)
		reply = s.config.FallbackReply
		degraded = true
	}

	aiMsg := domain.NewAIMessage(chat.ID, reply)
	if err := s.messageRepo.Append(ctx, &aiMsg); err != nil {
		s.logger.Error("could not store AI message", "chat_id", chat.ID, "error", err.Error())
		return nil, degraded
	}
	if err := s.chatRepo.TouchUpdatedAt(ctx, chat.ID); err != nil {
		s.logger.Warn("could not advance chat timestamp", "chat_id", chat.ID, "error", err.Error())
	}
	return &aiMsg, degraded
}

// recentHistory returns the last ContextWindowSize messages before the
// triggering one, oldest first, as role-tagged turns.
func (s *service) recentHistory(ctx context.Context, chatID, excludeID string) ([]ai.TurnMessage, error) {
	messages, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	messages = lo.Filter(messages, func(m domain.Message, _ int) bool {
		return m.ID != excludeID
	})
	if len(messages) > s.config.ContextWindowSize {
		messages = messages[len(messages)-s.config.ContextWindowSize:]
	}

	return lo.Map(messages, func(m domain.Message, _ int) ai.TurnMessage {
		turn := ai.TurnMessage{Content: m.Text, Name: domain.SenderNameOf(m)}
		if m.Sender.Kind() == domain.SenderAI {
			turn.Role = openai.ChatMessageRoleAssistant
		} else {
			turn.Role = openai.ChatMessageRoleUser
		}
		return turn
	}), nil
}
