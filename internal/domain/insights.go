// File: internal/domain/insights.go
package domain

// Insights is the output of the conversation-analysis pass. Summary and
// ActionItems land on the chat record; KeyTopics become its tags.
type Insights struct {
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"actionItems"`
	Sentiment   Sentiment    `json:"sentiment"`
	KeyTopics   []string     `json:"keyTopics"`
}
