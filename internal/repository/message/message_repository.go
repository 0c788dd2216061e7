// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/blendchat/blendchat/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

const maxMessageLength = 10000

// Record is one message row. The sender variant is flattened into a kind
// column plus the identity columns that apply to it.
type Record struct {
	ID          string `gorm:"primaryKey"`
	ChatID      string `gorm:"index:idx_messages_chat_created;not null"`
	Kind        string `gorm:"not null"`
	Text        string `gorm:"not null"`
	SenderEmail string
	SenderName  string
	Sentiment   string
	CreatedAt   time.Time `gorm:"index:idx_messages_chat_created"`
}

func (Record) TableName() string { return "messages" }

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Append inserts one message row. It is a bare INSERT on purpose: two
// concurrent appends to the same chat each add their own row, so neither can
// overwrite the other the way a read-modify-write of a message list would.
func (r *gormMessageRepository) Append(ctx context.Context, message *domain.Message) error {
	if err := validateMessageInput(message); err != nil {
		log.Printf("[MessageRepository] Validation failed: %v", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	record, err := toRecord(message)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		log.Printf("[MessageRepository] Database error appending message to chat %s: %v", message.ChatID, err)
		return errors.New("database error appending message")
	}
	return nil
}

// FindByChatID returns the chat's messages in append order. Ties on the
// timestamp fall back to id so the order is stable.
func (r *gormMessageRepository) FindByChatID(ctx context.Context, chatID string) ([]domain.Message, error) {
	if strings.TrimSpace(chatID) == "" {
		return nil, errors.New("invalid chat ID")
	}

	var records []Record
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching messages for chat %s: %v", chatID, err)
		return nil, errors.New("database error fetching messages")
	}

	messages := make([]domain.Message, 0, len(records))
	for i := range records {
		msg, err := toDomain(&records[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID string) (int64, error) {
	if strings.TrimSpace(chatID) == "" {
		return 0, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&Record{}).Where("chat_id = ?", chatID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for chat %s: %v", chatID, err)
		return 0, errors.New("database error counting messages")
	}
	return count, nil
}

// ===== ROW MAPPING =====

func toRecord(message *domain.Message) (*Record, error) {
	record := &Record{
		ID:        message.ID,
		ChatID:    message.ChatID,
		Text:      message.Text,
		CreatedAt: message.CreatedAt,
	}
	switch s := message.Sender.(type) {
	case domain.UserSender:
		record.Kind = string(domain.SenderUser)
		record.SenderEmail = s.Email
		record.SenderName = s.Name
		record.Sentiment = string(s.Sentiment)
	case domain.AISender:
		record.Kind = string(domain.SenderAI)
	case domain.EmailSender:
		record.Kind = string(domain.SenderEmail)
		record.SenderEmail = s.Email
		record.SenderName = s.Name
	default:
		return nil, fmt.Errorf("message %s has no sender variant", message.ID)
	}
	return record, nil
}

func toDomain(record *Record) (domain.Message, error) {
	msg := domain.Message{
		ID:        record.ID,
		ChatID:    record.ChatID,
		Text:      record.Text,
		CreatedAt: record.CreatedAt,
	}
	switch domain.SenderKind(record.Kind) {
	case domain.SenderUser:
		msg.Sender = domain.UserSender{
			Email:     record.SenderEmail,
			Name:      record.SenderName,
			Sentiment: domain.Sentiment(record.Sentiment),
		}
	case domain.SenderAI:
		msg.Sender = domain.AISender{}
	case domain.SenderEmail:
		msg.Sender = domain.EmailSender{Email: record.SenderEmail, Name: record.SenderName}
	default:
		return domain.Message{}, fmt.Errorf("message %s has unknown sender kind %q", record.ID, record.Kind)
	}
	return msg, nil
}

// ===== VALIDATION HELPERS =====

func validateMessageInput(message *domain.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}
	if strings.TrimSpace(message.ID) == "" {
		return errors.New("message ID is required")
	}
	if strings.TrimSpace(message.ChatID) == "" {
		return errors.New("chat ID is required")
	}
	if strings.TrimSpace(message.Text) == "" {
		return errors.New("message text cannot be empty")
	}
	if len(message.Text) > maxMessageLength {
		return errors.New("message text exceeds maximum length")
	}
	if message.Sender == nil {
		return errors.New("message sender is required")
	}
	return nil
}
