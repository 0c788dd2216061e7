// File: internal/services/ai/interface.go
package ai

import (
	"context"

	"github.com/blendchat/blendchat/internal/domain"
)

// ProviderStatus represents AI provider health
type ProviderStatus struct {
	IsHealthy bool
	Message   string
}

// TurnMessage is one role-tagged line of conversational context.
type TurnMessage struct {
	Role    string // "user" or "assistant"
	Name    string // display name for user turns, may be empty
	Content string
}

// CompletionProvider produces the assistant reply for a chat turn.
type CompletionProvider interface {
	GenerateReply(ctx context.Context, history []TurnMessage, prompt string) (string, error)
	HealthCheck(ctx context.Context) error
}

// AnalysisProvider extracts conversation insights (summary, action items,
// sentiment, key topics) from the full history.
type AnalysisProvider interface {
	AnalyzeConversation(ctx context.Context, history []TurnMessage) (domain.Insights, error)
}

// Provider combines both capabilities.
type Provider interface {
	CompletionProvider
	AnalysisProvider
	GetStatus(ctx context.Context) ProviderStatus
}

// Service defines the high-level AI interface consumed by the chat service.
type Service interface {
	GenerateReply(ctx context.Context, history []TurnMessage, prompt string) (string, error)
	AnalyzeConversation(ctx context.Context, history []TurnMessage) (domain.Insights, error)
	GetProviderStatus(ctx context.Context) ProviderStatus
}
