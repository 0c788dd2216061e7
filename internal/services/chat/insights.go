// File: internal/services/chat/insights.go
package chat

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"github.com/samber/lo"

	"github.com/blendchat/blendchat/internal/domain"
	"github.com/blendchat/blendchat/internal/services/ai"
)

// maybeAnalyze kicks off the conversation-analysis pass once the chat has
// crossed the message threshold. It is fire-and-forget: it runs detached
// from the request context with its own budget, and any failure is only
// logged, never surfaced to the append path.
func (s *service) maybeAnalyze(ctx context.Context, chatID string) {
	if s.aiService == nil {
		return
	}

	count, err := s.messageRepo.CountByChatID(ctx, chatID)
	if err != nil {
		s.logger.Warn("could not count messages for analysis", "chat_id", chatID, "error", err.Error())
		return
	}
	if count < int64(s.config.InsightsThreshold) {
		return
	}

	go s.analyzeConversation(chatID)
}

func (s *service) analyzeConversation(chatID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.InsightsTimeout)
	defer cancel()

	messages, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		s.logger.Warn("analysis skipped, could not load messages", "chat_id", chatID, "error", err.Error())
		return
	}

	history := lo.Map(messages, func(m domain.Message, _ int) ai.TurnMessage {
		turn := ai.TurnMessage{Content: m.Text, Name: domain.SenderNameOf(m)}
		if m.Sender.Kind() == domain.SenderAI {
			turn.Role = openai.ChatMessageRoleAssistant
		} else {
			turn.Role = openai.ChatMessageRoleUser
		}
		return turn
	})

	insights, err := s.aiService.AnalyzeConversation(ctx, history)
	if err != nil {
		s.logger.Warn("conversation analysis failed", "chat_id", chatID, "error", err.Error())
		return
	}

	if err := s.chatRepo.UpdateInsights(ctx, chatID, insights); err != nil {
		s.logger.Warn("could not persist insights", "chat_id", chatID, "error", err.Error())
		return
	}

	s.logger.Info("conversation insights updated",
		"chat_id", chatID,
		"action_items", len(insights.ActionItems),
		"topics", len(insights.KeyTopics),
	)
}
