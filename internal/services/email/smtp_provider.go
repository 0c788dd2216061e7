// File: internal/services/email/smtp_provider.go
package email

import (
	"context"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail over plain SMTP with STARTTLS.
type SMTPProvider struct {
	config *Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *Config) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass),
	}
}

func (p *SMTPProvider) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return NewValidationError("recipient address is required")
	}
	if msg.HTMLBody == "" && msg.TextBody == "" {
		return NewValidationError("message body is required")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", p.config.FromAddress)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.HTMLBody != "" {
		m.SetBody("text/html", msg.HTMLBody)
		if msg.TextBody != "" {
			m.AddAlternative("text/plain", msg.TextBody)
		}
	} else {
		m.SetBody("text/plain", msg.TextBody)
	}

	// gomail has no context support; run the dial in a goroutine so a
	// cancelled request does not hang on a dead SMTP server.
	done := make(chan error, 1)
	go func() {
		done <- p.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return NewProviderError("smtp send cancelled", ctx.Err())
	case err := <-done:
		if err != nil {
			return NewProviderError("smtp send failed", err)
		}
		return nil
	}
}

func (p *SMTPProvider) HealthCheck(ctx context.Context) error {
	closer, err := p.dialer.Dial()
	if err != nil {
		return NewProviderError("smtp dial failed", err)
	}
	return closer.Close()
}
