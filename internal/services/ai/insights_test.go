package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blendchat/blendchat/internal/domain"
)

func Test_ParseInsights_PlainJSON(t *testing.T) {
	req := require.New(t)

	insights, err := ParseInsights(`{
		"summary": "Alice and Bob planned the launch.",
		"actionItems": [{"text": "book a room", "assignedTo": "Bob"}],
		"sentiment": "positive",
		"keyTopics": ["launch", "scheduling"]
	}`)
	req.NoError(err)
	req.Equal("Alice and Bob planned the launch.", insights.Summary)
	req.Len(insights.ActionItems, 1)
	req.Equal("Bob", insights.ActionItems[0].AssignedTo)
	req.Equal(domain.SentimentPositive, insights.Sentiment)
	req.Equal([]string{"launch", "scheduling"}, insights.KeyTopics)
}

func Test_ParseInsights_StripsCodeFences(t *testing.T) {
	req := require.New(t)

	insights, err := ParseInsights("```json\n{\"summary\":\"ok\",\"keyTopics\":[]}\n```")
	req.NoError(err)
	req.Equal("ok", insights.Summary)
	req.Equal(domain.SentimentNeutral, insights.Sentiment, "missing sentiment defaults to neutral")
}

func Test_ParseInsights_LimitsTopicsToFive(t *testing.T) {
	insights, err := ParseInsights(`{"summary":"s","keyTopics":["a","b","c","d","e","f","g"]}`)
	require.NoError(t, err)
	require.Len(t, insights.KeyTopics, 5)
}

func Test_ParseInsights_MalformedBody(t *testing.T) {
	req := require.New(t)

	_, err := ParseInsights("I could not analyze that conversation.")
	req.Error(err)

	var aiErr *AIError
	req.ErrorAs(err, &aiErr)
	req.Equal(ErrTypeMalformed, aiErr.Type)
}
