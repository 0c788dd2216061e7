// File: internal/services/email/service.go
package email

import "context"

// Logger matches the structured logger used across services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type service struct {
	config   *Config
	provider Provider
	retry    *RetryConfig
	logger   Logger
}

func NewService(config *Config, provider Provider, logger Logger) (Service, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}
	if provider == nil {
		return nil, NewConfigError("email provider is required")
	}
	retry := DefaultRetryConfig()
	if config.MaxRetries > 0 {
		retry.MaxAttempts = config.MaxRetries
	}
	if config.RetryDelay > 0 {
		retry.Delay = config.RetryDelay
	}
	return &service{config: config, provider: provider, retry: retry, logger: logger}, nil
}

func (s *service) SendInvitation(ctx context.Context, inv Invitation) error {
	msg, err := BuildInvitation(s.config, inv)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	err = RetryWithBackoff(ctx, s.retry, func(ctx context.Context) error {
		return s.provider.Send(ctx, msg)
	})
	if err != nil {
		s.logger.Warn("invitation delivery failed",
			"chat_id", inv.ChatID,
			"recipient", inv.Recipient,
			"error", err.Error(),
		)
		return err
	}

	s.logger.Info("invitation sent", "chat_id", inv.ChatID, "recipient", inv.Recipient)
	return nil
}

func (s *service) GetProviderStatus(ctx context.Context) ProviderStatus {
	if err := s.provider.HealthCheck(ctx); err != nil {
		return ProviderStatus{IsHealthy: false, Message: err.Error()}
	}
	return ProviderStatus{IsHealthy: true, Message: "email provider healthy"}
}
