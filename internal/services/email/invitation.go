// File: internal/services/email/invitation.go
package email

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
)

const previewMaxRunes = 100

// BuildInvitation renders one participant's invite. The body is written as
// markdown and rendered to HTML; the markdown itself doubles as the
// plain-text alternative.
func BuildInvitation(config *Config, inv Invitation) (Message, error) {
	if inv.Recipient == "" {
		return Message{}, NewValidationError("invitation recipient is required")
	}
	if inv.ChatID == "" || inv.AccessToken == "" {
		return Message{}, NewValidationError("invitation link parts are missing")
	}

	joinURL := fmt.Sprintf("%s/chat/%s?email=%s&token=%s",
		strings.TrimRight(config.SiteURL, "/"),
		url.PathEscape(inv.ChatID),
		url.QueryEscape(inv.Recipient),
		url.QueryEscape(inv.AccessToken),
	)
	replyAddress := fmt.Sprintf("chat-%s@%s", inv.ChatID, config.ReplyDomain)

	var md strings.Builder
	md.WriteString("## You've been invited to a group chat!\n\n")
	fmt.Fprintf(&md, "%s (%s) invited you to join a conversation.\n\n", inv.CreatorName, inv.CreatorEmail)
	fmt.Fprintf(&md, "**First message:** %q\n\n", previewText(inv.FirstMessage))
	fmt.Fprintf(&md, "[Join the conversation](%s)\n\n", joinURL)
	fmt.Fprintf(&md, "You can also reply directly to this email, or write to %s, and your answer will appear in the chat.\n", replyAddress)

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &html); err != nil {
		return Message{}, NewProviderError("rendering invitation body", err)
	}

	return Message{
		To:       inv.Recipient,
		Subject:  fmt.Sprintf("%s invited you to a group chat", inv.CreatorName),
		HTMLBody: html.String(),
		TextBody: md.String(),
	}, nil
}

func previewText(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= previewMaxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewMaxRunes]) + "..."
}
