// File: internal/services/ai/service.go
package ai

import (
	"context"
	"time"

	"github.com/blendchat/blendchat/internal/domain"
)

// Logger matches the structured logger used across services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// service wraps a Provider with timeouts and logging. The chat service never
// talks to the provider directly.
type service struct {
	config   *Config
	provider Provider
	logger   Logger
}

func NewService(config *Config, provider Provider, logger Logger) (Service, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}
	if provider == nil {
		return nil, NewConfigError("AI provider is required")
	}
	return &service{config: config, provider: provider, logger: logger}, nil
}

func (s *service) GenerateReply(ctx context.Context, history []TurnMessage, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.provider.GenerateReply(ctx, history, prompt)
	if err != nil {
		s.logger.Error("AI reply failed",
			"history_len", len(history),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error(),
		)
		return "", err
	}

	s.logger.Debug("AI reply generated",
		"history_len", len(history),
		"reply_len", len(reply),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return reply, nil
}

func (s *service) AnalyzeConversation(ctx context.Context, history []TurnMessage) (domain.Insights, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	insights, err := s.provider.AnalyzeConversation(ctx, history)
	if err != nil {
		s.logger.Warn("conversation analysis failed", "history_len", len(history), "error", err.Error())
		return insights, err
	}
	return insights, nil
}

func (s *service) GetProviderStatus(ctx context.Context) ProviderStatus {
	return s.provider.GetStatus(ctx)
}
