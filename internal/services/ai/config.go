// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	// Provider Configuration
	APIKey  string
	BaseURL string
	Model   string

	// Performance Configuration
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Model Parameters
	ReplyTemperature    float32
	AnalysisTemperature float32
	MaxReplyTokens      int
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("AI_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("AI_MODEL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Model:               "gpt-4o-mini",
		Timeout:             60 * time.Second,
		MaxRetries:          3,
		RetryDelay:          2 * time.Second,
		ReplyTemperature:    0.7,
		AnalysisTemperature: 0.3, // low so the analysis JSON stays parseable
		MaxReplyTokens:      500,
	}
}
