// File: internal/services/chat/service.go
package chat

import (
	chatrepo "github.com/blendchat/blendchat/internal/repository/chat"
	messagerepo "github.com/blendchat/blendchat/internal/repository/message"
	"github.com/blendchat/blendchat/internal/services/ai"
	"github.com/blendchat/blendchat/internal/services/email"
)

type service struct {
	config       *Config
	chatRepo     chatrepo.ChatRepository
	messageRepo  messagerepo.MessageRepository
	aiService    ai.Service
	emailService email.Service
	logger       Logger
}

// NewService wires the chat core. aiService and emailService may be nil in
// deployments without an assistant or without outbound mail; the
// corresponding features degrade to no-ops.
func NewService(
	config *Config,
	chatRepo chatrepo.ChatRepository,
	messageRepo messagerepo.MessageRepository,
	aiService ai.Service,
	emailService email.Service,
	logger Logger,
) (Service, error) {
	if chatRepo == nil {
		return nil, NewValidationError("constructor", "chat repository is required")
	}
	if messageRepo == nil {
		return nil, NewValidationError("constructor", "message repository is required")
	}
	if logger == nil {
		return nil, NewValidationError("constructor", "logger is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	return &service{
		config:       config,
		chatRepo:     chatRepo,
		messageRepo:  messageRepo,
		aiService:    aiService,
		emailService: emailService,
		logger:       logger,
	}, nil
}
