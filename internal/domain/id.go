// File: internal/domain/id.go
package domain

import (
	"crypto/rand"
	"fmt"
)

const (
	chatIDLength   = 10
	chatIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
)

// NewChatID generates a short URL-safe chat identifier. The alphabet must
// stay compatible with the inbound bridge's chat-<id>@<domain> address
// parsing, so only [A-Za-z0-9_-] is used.
func NewChatID() (string, error) {
	buf := make([]byte, chatIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating chat ID: %w", err)
	}
	id := make([]byte, chatIDLength)
	for i, b := range buf {
		id[i] = chatIDAlphabet[int(b)%len(chatIDAlphabet)]
	}
	return string(id), nil
}
