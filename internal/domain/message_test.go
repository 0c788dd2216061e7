package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Message_JSON_RoundTrip(t *testing.T) {
	req := require.New(t)

	original := NewUserMessage("chat-1", "hello", "A@x.com", "Alice", SentimentPositive)

	data, err := json.Marshal(original)
	req.NoError(err)
	req.Contains(string(data), `"sender":"user"`)
	req.Contains(string(data), `"senderEmail":"a@x.com"`)
	req.Contains(string(data), `"sentiment":"positive"`)

	var decoded Message
	req.NoError(json.Unmarshal(data, &decoded))
	req.Equal(original.ID, decoded.ID)
	req.Equal(original.Sender, decoded.Sender)
}

func Test_Message_AI_CarriesNoIdentity(t *testing.T) {
	req := require.New(t)

	m := NewAIMessage("chat-1", "4")
	req.Equal(SenderAI, m.Sender.Kind())
	req.Empty(SenderEmailOf(m))
	req.Empty(SenderNameOf(m))

	data, err := json.Marshal(m)
	req.NoError(err)
	req.NotContains(string(data), "senderEmail")
	req.NotContains(string(data), "aiMetadata")
}

func Test_Message_UnmarshalRejectsUnknownKind(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{"id":"1","text":"x","sender":"webhook"}`), &m)
	require.Error(t, err)
}
