// File: internal/domain/message.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SenderKind is the closed set of message origins.
type SenderKind string

const (
	SenderUser  SenderKind = "user"  // typed into the web client
	SenderAI    SenderKind = "ai"    // generated by the assistant
	SenderEmail SenderKind = "email" // delivered through the inbound-email bridge
)

// Sentiment is the lightweight tag attached to user messages.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sender is a closed variant over SenderKind. Each variant carries only the
// fields that exist for that origin, so an AI message can never hold a
// sender address by construction.
type Sender interface {
	Kind() SenderKind
}

// UserSender identifies a participant writing from the web client.
type UserSender struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

func (UserSender) Kind() SenderKind { return SenderUser }

// AISender marks an assistant turn. It carries no identity.
type AISender struct{}

func (AISender) Kind() SenderKind { return SenderAI }

// EmailSender identifies a participant replying by email.
type EmailSender struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (EmailSender) Kind() SenderKind { return SenderEmail }

// Message is one turn in a chat. Immutable once written.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Sender    Sender    `json:"sender"`
}

// NewUserMessage builds a message typed by a participant in the client.
func NewUserMessage(chatID, text, email, name string, sentiment Sentiment) Message {
	return Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Sender:    UserSender{Email: NormalizeEmail(email), Name: name, Sentiment: sentiment},
	}
}

// NewAIMessage builds an assistant turn.
func NewAIMessage(chatID, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Sender:    AISender{},
	}
}

// NewEmailMessage builds a message that arrived through the inbound bridge.
func NewEmailMessage(chatID, text, email, name string) Message {
	return Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Sender:    EmailSender{Email: NormalizeEmail(email), Name: name},
	}
}

// SenderEmailOf returns the address behind a message, or "" for AI turns.
func SenderEmailOf(m Message) string {
	switch s := m.Sender.(type) {
	case UserSender:
		return s.Email
	case EmailSender:
		return s.Email
	default:
		return ""
	}
}

// SenderNameOf returns the display name behind a message, or "" for AI turns.
func SenderNameOf(m Message) string {
	switch s := m.Sender.(type) {
	case UserSender:
		return s.Name
	case EmailSender:
		return s.Name
	default:
		return ""
	}
}
