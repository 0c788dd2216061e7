package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BuildAccessTokens_OnePerParticipant(t *testing.T) {
	req := require.New(t)

	tokens, err := BuildAccessTokens("a@x.com", []string{"b@x.com", "c@x.com"})
	req.NoError(err)
	req.Len(tokens, 3)

	seen := map[string]bool{}
	for email, token := range tokens {
		req.NotEmpty(token)
		req.False(seen[token], "token for %s reused", email)
		seen[token] = true
	}
	req.Contains(tokens, "a@x.com")
	req.Contains(tokens, "b@x.com")
	req.Contains(tokens, "c@x.com")
}

func Test_BuildAccessTokens_DeduplicatesAndNormalizes(t *testing.T) {
	req := require.New(t)

	tokens, err := BuildAccessTokens("A@x.com", []string{"a@x.com", " B@x.com ", ""})
	req.NoError(err)
	req.Len(tokens, 2)
	req.Contains(tokens, "a@x.com")
	req.Contains(tokens, "b@x.com")
}

func Test_TokenEqual(t *testing.T) {
	req := require.New(t)

	token, err := NewAccessToken()
	req.NoError(err)
	req.Len(token, 32)

	req.True(TokenEqual(token, token))
	req.False(TokenEqual(token, "wrong"))
	req.False(TokenEqual("", ""))
	req.False(TokenEqual(token, ""))
}

func Test_TitleFromMessage_Truncates(t *testing.T) {
	req := require.New(t)

	req.Equal("hello", TitleFromMessage("  hello  "))

	long := "this message is well past the fifty rune limit for a chat title"
	title := TitleFromMessage(long)
	req.Equal(53, len([]rune(title)))
	req.Equal("...", title[len(title)-3:])
}
