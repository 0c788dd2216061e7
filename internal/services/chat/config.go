// File: internal/services/chat/config.go
package chat

import (
	"fmt"
	"time"
)

type Config struct {
	// AI Turn Configuration
	ContextWindowSize int    // recent messages fed to the completion call
	FallbackReply     string // appended when the completion service fails

	// Insight Configuration
	InsightsThreshold int           // message count that arms the analysis pass
	InsightsTimeout   time.Duration // budget for the detached analysis run

	// Lifecycle Configuration
	ChatTTL time.Duration // storage expiry stamped on new chats

	// Limits
	MaxInvitees      int
	MaxMessageLength int
}

func (c *Config) Validate() error {
	if c.ContextWindowSize <= 0 {
		return fmt.Errorf("context_window_size must be positive")
	}
	if c.ContextWindowSize > 100 {
		return fmt.Errorf("context_window_size cannot exceed 100")
	}
	if c.InsightsThreshold <= 0 {
		return fmt.Errorf("insights_threshold must be positive")
	}
	if c.InsightsTimeout <= 0 {
		return fmt.Errorf("insights_timeout must be positive")
	}
	if c.ChatTTL <= 0 {
		return fmt.Errorf("chat_ttl must be positive")
	}
	if c.MaxInvitees <= 0 {
		return fmt.Errorf("max_invitees must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		ContextWindowSize: 10,
		FallbackReply:     "I apologize, but I'm having trouble generating a response right now. Please try again.",
		InsightsThreshold: 5,
		InsightsTimeout:   45 * time.Second,
		ChatTTL:           30 * 24 * time.Hour,
		MaxInvitees:       20,
		MaxMessageLength:  10000,
	}
}
