// File: internal/services/chat/sentiment.go
package chat

import (
	"strings"

	"github.com/blendchat/blendchat/internal/domain"
)

var positiveWords = []string{
	"great", "awesome", "excellent", "thanks", "love", "perfect",
	"wonderful", "happy", "good",
}

var negativeWords = []string{
	"bad", "terrible", "hate", "problem", "issue", "wrong",
	"error", "fail", "disappointing",
}

// classifySentiment tags a user message with a cheap keyword score. It runs
// inline on the append path, so no model call is made for it.
func classifySentiment(text string) domain.Sentiment {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return domain.SentimentPositive
	case negative > positive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
