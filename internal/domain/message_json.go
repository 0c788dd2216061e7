// File: internal/domain/message_json.go
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// messageWire is the flat JSON shape clients consume: a sender tag plus the
// optional identity fields, matching the chat API contract.
type messageWire struct {
	ID          string     `json:"id"`
	ChatID      string     `json:"chatId,omitempty"`
	Text        string     `json:"text"`
	CreatedAt   time.Time  `json:"createdAt"`
	Sender      SenderKind `json:"sender"`
	SenderEmail string     `json:"senderEmail,omitempty"`
	SenderName  string     `json:"senderName,omitempty"`
	AIMetadata  *aiMeta    `json:"aiMetadata,omitempty"`
}

type aiMeta struct {
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	wire := messageWire{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
	switch s := m.Sender.(type) {
	case UserSender:
		wire.Sender = SenderUser
		wire.SenderEmail = s.Email
		wire.SenderName = s.Name
		if s.Sentiment != "" {
			wire.AIMetadata = &aiMeta{Sentiment: s.Sentiment}
		}
	case AISender:
		wire.Sender = SenderAI
	case EmailSender:
		wire.Sender = SenderEmail
		wire.SenderEmail = s.Email
		wire.SenderName = s.Name
	default:
		return nil, fmt.Errorf("message %s has no sender variant", m.ID)
	}
	return json.Marshal(wire)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var wire messageWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	m.ID = wire.ID
	m.ChatID = wire.ChatID
	m.Text = wire.Text
	m.CreatedAt = wire.CreatedAt
	switch wire.Sender {
	case SenderUser:
		sender := UserSender{Email: wire.SenderEmail, Name: wire.SenderName}
		if wire.AIMetadata != nil {
			sender.Sentiment = wire.AIMetadata.Sentiment
		}
		m.Sender = sender
	case SenderAI:
		m.Sender = AISender{}
	case SenderEmail:
		m.Sender = EmailSender{Email: wire.SenderEmail, Name: wire.SenderName}
	default:
		return fmt.Errorf("unknown sender kind %q", wire.Sender)
	}
	return nil
}
