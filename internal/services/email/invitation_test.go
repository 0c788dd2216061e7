package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.SMTPHost = "localhost"
	cfg.FromAddress = "BlendChat <noreply@chatbudi.com>"
	cfg.SiteURL = "https://chatbudi.com"
	return cfg
}

func Test_BuildInvitation_LinkEmbedsChatEmailToken(t *testing.T) {
	req := require.New(t)

	msg, err := BuildInvitation(testConfig(), Invitation{
		ChatID:       "abc123",
		Recipient:    "b@x.com",
		AccessToken:  "tok-b",
		CreatorName:  "Alice",
		CreatorEmail: "a@x.com",
		FirstMessage: "hello there",
	})
	req.NoError(err)

	req.Equal("b@x.com", msg.To)
	req.Equal("Alice invited you to a group chat", msg.Subject)
	req.Contains(msg.HTMLBody, "https://chatbudi.com/chat/abc123?email=b%40x.com&token=tok-b")
	req.Contains(msg.HTMLBody, "chat-abc123@chatbudi.com")
	req.Contains(msg.HTMLBody, "hello there")
	req.Contains(msg.TextBody, "Alice (a@x.com) invited you")
	req.Contains(msg.HTMLBody, "<a href=")
}

func Test_BuildInvitation_TruncatesPreview(t *testing.T) {
	req := require.New(t)

	first := strings.Repeat("x", 150)
	msg, err := BuildInvitation(testConfig(), Invitation{
		ChatID:       "abc123",
		Recipient:    "b@x.com",
		AccessToken:  "tok-b",
		CreatorName:  "Alice",
		CreatorEmail: "a@x.com",
		FirstMessage: first,
	})
	req.NoError(err)
	req.Contains(msg.TextBody, strings.Repeat("x", 100)+"...")
	req.NotContains(msg.TextBody, strings.Repeat("x", 101))
}

func Test_BuildInvitation_RequiresLinkParts(t *testing.T) {
	req := require.New(t)

	_, err := BuildInvitation(testConfig(), Invitation{Recipient: "b@x.com"})
	req.Error(err)

	_, err = BuildInvitation(testConfig(), Invitation{ChatID: "abc", AccessToken: "t"})
	req.Error(err)
}
