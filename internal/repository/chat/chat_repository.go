// File: internal/repository/chat/chat_repository.go
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/blendchat/blendchat/internal/domain"
)

var ErrChatNotFound = errors.New("chat not found")

// Record is the chat row. Slice and map fields are stored as JSON text so a
// chat reads and writes as one document keyed by id; messages live in their
// own table so appends stay additive.
type Record struct {
	ID            string `gorm:"primaryKey"`
	Title         string `gorm:"not null"`
	CreatorEmail  string `gorm:"index;not null"`
	CreatorName   string
	InvitedEmails string
	AccessTokens  string
	IncludeGPT    bool
	AISummary     string
	ActionItems   string
	Tags          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	// ExpiresAt is the TTL attribute; an external sweep deletes expired rows.
	ExpiresAt time.Time `gorm:"index"`
}

func (Record) TableName() string { return "chats" }

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) error {
	if err := validateChatInput(chat); err != nil {
		log.Printf("[ChatRepository] Validation failed: %v", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	record, err := toRecord(chat)
	if err != nil {
		return fmt.Errorf("encoding chat %s: %w", chat.ID, err)
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		log.Printf("[ChatRepository] Database error creating chat %s: %v", chat.ID, err)
		return errors.New("database error creating chat")
	}
	return nil
}

func (r *gormChatRepository) FindByID(ctx context.Context, id string) (*domain.Chat, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("invalid chat ID")
	}

	var record Record
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		log.Printf("[ChatRepository] FindByID database error: %v", err)
		return nil, errors.New("database query failed")
	}
	return toDomain(&record)
}

func (r *gormChatRepository) FindByCreator(ctx context.Context, creatorEmail string) ([]domain.Chat, error) {
	creatorEmail = domain.NormalizeEmail(creatorEmail)
	if creatorEmail == "" {
		return nil, errors.New("invalid creator email")
	}

	var records []Record
	err := r.db.WithContext(ctx).
		Where("creator_email = ?", creatorEmail).
		Order("updated_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		log.Printf("[ChatRepository] Database error finding chats for %s: %v", creatorEmail, err)
		return nil, errors.New("database error fetching chats")
	}

	chats := make([]domain.Chat, 0, len(records))
	for i := range records {
		chat, err := toDomain(&records[i])
		if err != nil {
			return nil, err
		}
		chats = append(chats, *chat)
	}
	return chats, nil
}

func (r *gormChatRepository) TouchUpdatedAt(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ?", id).
		Update("updated_at", time.Now().UTC())
	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating timestamp for chat %s: %v", id, result.Error)
		return errors.New("database error updating chat timestamp")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}
	return nil
}

// UpdateInsights writes only the AI-derived columns; everything else on the
// row is left untouched so it cannot race with message appends.
func (r *gormChatRepository) UpdateInsights(ctx context.Context, id string, insights domain.Insights) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("invalid chat ID")
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if insights.Summary != "" {
		updates["ai_summary"] = insights.Summary
	}
	if insights.ActionItems != nil {
		items, err := json.Marshal(insights.ActionItems)
		if err != nil {
			return fmt.Errorf("encoding action items: %w", err)
		}
		updates["action_items"] = string(items)
	}
	if insights.KeyTopics != nil {
		tags, err := json.Marshal(insights.KeyTopics)
		if err != nil {
			return fmt.Errorf("encoding tags: %w", err)
		}
		updates["tags"] = string(tags)
	}

	result := r.db.WithContext(ctx).Model(&Record{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating insights for chat %s: %v", id, result.Error)
		return errors.New("database error updating chat insights")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}
	return nil
}

// ===== ROW MAPPING =====

func toRecord(chat *domain.Chat) (*Record, error) {
	invited, err := json.Marshal(chat.InvitedEmails)
	if err != nil {
		return nil, err
	}
	tokens, err := json.Marshal(chat.AccessTokens)
	if err != nil {
		return nil, err
	}
	record := &Record{
		ID:            chat.ID,
		Title:         chat.Title,
		CreatorEmail:  domain.NormalizeEmail(chat.CreatorEmail),
		CreatorName:   chat.CreatorName,
		InvitedEmails: string(invited),
		AccessTokens:  string(tokens),
		IncludeGPT:    chat.IncludeGPT,
		AISummary:     chat.AISummary,
		CreatedAt:     chat.CreatedAt,
		UpdatedAt:     chat.UpdatedAt,
		ExpiresAt:     chat.ExpiresAt,
	}
	if chat.ActionItems != nil {
		items, err := json.Marshal(chat.ActionItems)
		if err != nil {
			return nil, err
		}
		record.ActionItems = string(items)
	}
	if chat.Tags != nil {
		tags, err := json.Marshal(chat.Tags)
		if err != nil {
			return nil, err
		}
		record.Tags = string(tags)
	}
	return record, nil
}

func toDomain(record *Record) (*domain.Chat, error) {
	chat := &domain.Chat{
		ID:           record.ID,
		Title:        record.Title,
		CreatorEmail: record.CreatorEmail,
		CreatorName:  record.CreatorName,
		IncludeGPT:   record.IncludeGPT,
		AISummary:    record.AISummary,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
		ExpiresAt:    record.ExpiresAt,
	}
	if record.InvitedEmails != "" {
		if err := json.Unmarshal([]byte(record.InvitedEmails), &chat.InvitedEmails); err != nil {
			return nil, fmt.Errorf("decoding invited emails for chat %s: %w", record.ID, err)
		}
	}
	if record.AccessTokens != "" {
		if err := json.Unmarshal([]byte(record.AccessTokens), &chat.AccessTokens); err != nil {
			return nil, fmt.Errorf("decoding access tokens for chat %s: %w", record.ID, err)
		}
	}
	if record.ActionItems != "" {
		if err := json.Unmarshal([]byte(record.ActionItems), &chat.ActionItems); err != nil {
			return nil, fmt.Errorf("decoding action items for chat %s: %w", record.ID, err)
		}
	}
	if record.Tags != "" {
		if err := json.Unmarshal([]byte(record.Tags), &chat.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for chat %s: %w", record.ID, err)
		}
	}
	return chat, nil
}

// ===== VALIDATION HELPERS =====

func validateChatInput(chat *domain.Chat) error {
	if chat == nil {
		return errors.New("chat cannot be nil")
	}
	if strings.TrimSpace(chat.ID) == "" {
		return errors.New("chat ID is required")
	}
	if domain.NormalizeEmail(chat.CreatorEmail) == "" {
		return errors.New("creator email is required")
	}
	if len(chat.Title) > 200 {
		return errors.New("title must be 200 characters or less")
	}
	return nil
}
