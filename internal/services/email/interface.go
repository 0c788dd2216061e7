// File: internal/services/email/interface.go
package email

import "context"

// ProviderStatus represents the health status of the mail provider
type ProviderStatus struct {
	IsHealthy bool
	Message   string
}

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
	HealthCheck(ctx context.Context) error
}

// Invitation carries everything needed to render one participant's invite.
type Invitation struct {
	ChatID       string
	Recipient    string
	AccessToken  string
	CreatorName  string
	CreatorEmail string
	FirstMessage string
}

type Service interface {
	// SendInvitation delivers a single invite; the caller decides how to
	// handle per-recipient failures.
	SendInvitation(ctx context.Context, inv Invitation) error
	GetProviderStatus(ctx context.Context) ProviderStatus
}
