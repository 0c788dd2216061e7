// File: internal/domain/chat.go
package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const titleMaxRunes = 50

// ActionItem is a single follow-up extracted from the conversation by the
// analysis pass.
type ActionItem struct {
	Text       string `json:"text"`
	AssignedTo string `json:"assignedTo,omitempty"`
	Completed  bool   `json:"completed"`
}

// Chat represents one multi-party conversation. Everything except the
// timestamps and the AI insight fields is immutable after creation.
type Chat struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	CreatorEmail  string   `json:"creatorEmail"`
	CreatorName   string   `json:"creatorName"`
	InvitedEmails []string `json:"invitedEmails"`
	// AccessTokens maps participant email to that participant's link token.
	// Keys are exactly InvitedEmails plus the creator.
	AccessTokens map[string]string `json:"accessTokens,omitempty"`
	IncludeGPT   bool              `json:"includeGPT"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	// ExpiresAt feeds the storage TTL attribute; expiry is enforced by the
	// store, not by this service.
	ExpiresAt time.Time `json:"expiresAt"`

	Messages []Message `json:"messages"`

	AISummary   string       `json:"aiSummary,omitempty"`
	ActionItems []ActionItem `json:"actionItems,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// HasAccessControl reports whether the chat was created with per-participant
// tokens. Chats without a token map are open.
func (c *Chat) HasAccessControl() bool {
	return len(c.AccessTokens) > 0
}

// IsParticipant reports whether email holds a token for this chat.
func (c *Chat) IsParticipant(email string) bool {
	_, ok := c.AccessTokens[NormalizeEmail(email)]
	return ok
}

// TitleFromMessage derives the immutable chat title from the first message,
// truncated to 50 runes with an ellipsis.
func TitleFromMessage(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= titleMaxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:titleMaxRunes]) + "..."
}

// NormalizeEmail lower-cases and trims an address so map lookups and token
// checks are not case-sensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
