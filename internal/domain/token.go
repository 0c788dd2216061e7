// File: internal/domain/token.go
package domain

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const accessTokenBytes = 16

// NewAccessToken generates one per-participant link token: 128 random bits,
// hex encoded. The raw token is embedded in the invitation link, so it is
// stored as-is rather than hashed.
func NewAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// TokenEqual compares tokens in constant time.
func TokenEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// BuildAccessTokens issues one token per participant. The creator always
// receives a token, so a chat with n invitees ends up with n+1 entries.
func BuildAccessTokens(creatorEmail string, invitedEmails []string) (map[string]string, error) {
	tokens := make(map[string]string, len(invitedEmails)+1)
	for _, email := range append([]string{creatorEmail}, invitedEmails...) {
		normalized := NormalizeEmail(email)
		if normalized == "" {
			continue
		}
		if _, exists := tokens[normalized]; exists {
			continue
		}
		token, err := NewAccessToken()
		if err != nil {
			return nil, err
		}
		tokens[normalized] = token
	}
	return tokens, nil
}
