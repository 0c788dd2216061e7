// File: internal/services/email/config.go
package email

import (
	"fmt"
	"time"
)

type Config struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// FromAddress is the envelope sender, e.g. "BlendChat <noreply@chatbudi.com>".
	FromAddress string
	// SiteURL is the public base URL embedded in invitation links.
	SiteURL string
	// ReplyDomain is the domain behind the chat-<id>@<domain> reply addresses.
	ReplyDomain string

	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func (c *Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("SMTP_PORT is required")
	}
	if c.FromAddress == "" {
		return fmt.Errorf("EMAIL_FROM is required")
	}
	if c.SiteURL == "" {
		return fmt.Errorf("SITE_URL is required")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		SMTPPort:    587,
		Timeout:     15 * time.Second,
		MaxRetries:  3,
		RetryDelay:  500 * time.Millisecond,
		ReplyDomain: "chatbudi.com",
	}
}
