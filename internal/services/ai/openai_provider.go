// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"encoding/json"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/blendchat/blendchat/internal/domain"
)

const replySystemPrompt = `You are a helpful AI assistant participating in a group chat.

Your role is to:
- Provide helpful, concise responses
- Extract and summarize action items when asked
- Offer suggestions and insights
- Be professional but friendly
- When appropriate, format your response with bullet points or numbered lists

Keep responses focused and actionable.`

const analysisSystemPrompt = `You are an AI assistant that analyzes group conversations and provides actionable insights.

Your task is to analyze the conversation and return a JSON object with:
- summary: A concise 2-3 sentence summary of the conversation
- actionItems: Array of action items mentioned (objects with "text" and optional "assignedTo")
- sentiment: Overall sentiment (positive/negative/neutral)
- keyTopics: Array of main topics discussed (max 5)

Return ONLY valid JSON, no markdown formatting.`

type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// GenerateReply sends the system instruction, the bounded history window and
// the new prompt as role-tagged messages and returns the assistant text.
func (p *OpenAIProvider) GenerateReply(ctx context.Context, history []TurnMessage, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: replySystemPrompt,
	})
	for _, turn := range history {
		messages = append(messages, toChatMessage(turn))
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    messages,
		Temperature: p.config.ReplyTemperature,
		MaxTokens:   p.config.MaxReplyTokens,
	})
	if err != nil {
		return "", NewProviderError("reply", "failed to create completion", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "reply",
			Message:   "empty completion response",
		}
	}
	return resp.Choices[0].Message.Content, nil
}

// AnalyzeConversation asks the model for strict JSON and parses it into
// domain insights.
func (p *OpenAIProvider) AnalyzeConversation(ctx context.Context, history []TurnMessage) (domain.Insights, error) {
	var transcript strings.Builder
	for _, turn := range history {
		name := turn.Name
		if name == "" {
			if turn.Role == openai.ChatMessageRoleAssistant {
				name = "Assistant"
			} else {
				name = "User"
			}
		}
		transcript.WriteString(name)
		transcript.WriteString(": ")
		transcript.WriteString(turn.Content)
		transcript.WriteString("\n")
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript.String()},
		},
		Temperature: p.config.AnalysisTemperature,
	})
	if err != nil {
		return domain.Insights{}, NewProviderError("analysis", "failed to create completion", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return domain.Insights{}, &AIError{
			Type:      ErrTypeProvider,
			Operation: "analysis",
			Message:   "empty analysis response",
		}
	}
	return ParseInsights(resp.Choices[0].Message.Content)
}

// ParseInsights decodes the analysis JSON, tolerating the markdown code
// fences some models wrap around it despite the instruction not to.
func ParseInsights(raw string) (domain.Insights, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var insights domain.Insights
	if err := json.Unmarshal([]byte(cleaned), &insights); err != nil {
		return domain.Insights{}, NewMalformedError("analysis", "analysis response is not valid JSON", err)
	}
	if insights.Sentiment == "" {
		insights.Sentiment = domain.SentimentNeutral
	}
	if len(insights.KeyTopics) > 5 {
		insights.KeyTopics = insights.KeyTopics[:5]
	}
	return insights, nil
}

func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	return nil
}

func (p *OpenAIProvider) GetStatus(ctx context.Context) ProviderStatus {
	return ProviderStatus{IsHealthy: true, Message: "OpenAI provider healthy"}
}

func toChatMessage(turn TurnMessage) openai.ChatCompletionMessage {
	role := openai.ChatMessageRoleUser
	if turn.Role == openai.ChatMessageRoleAssistant {
		role = openai.ChatMessageRoleAssistant
	}
	content := turn.Content
	if turn.Name != "" && role == openai.ChatMessageRoleUser {
		content = turn.Name + ": " + turn.Content
	}
	return openai.ChatCompletionMessage{Role: role, Content: content}
}
