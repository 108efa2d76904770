// Package llm provides the chat-completion client used to answer questions.
package llm

import (
	"context"
	"strings"

	"github.com/hyperjump/kotae/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// MissingKeyAnswer is returned when no API credential is configured.
// A missing key degrades answering rather than failing startup.
const MissingKeyAnswer = "API key not configured. Please set the OPENAI_API_KEY environment variable."

// systemPrompt pins the assistant to short, final answers for assignment
// questions of the degree program this service was built for.
const systemPrompt = "You are a helpful assistant for IIT Madras' Online Degree in Data Science. " +
	"Your job is to provide direct, concise answers to assignment questions. " +
	"Only provide the final answer without explanation."

// Client produces a short answer for a (possibly context-augmented) question.
// Implementations never return an error; failures become descriptive answer text.
type Client interface {
	Answer(ctx context.Context, question string) string
}

// OpenAIClient answers questions via the OpenAI chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates a client from cfg. When cfg.APIKey is empty the
// returned client reports the missing credential on every call instead of
// failing construction.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	c := &OpenAIClient{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
	if cfg.APIKey == "" {
		return c
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	c.client = openai.NewClientWithConfig(clientConfig)
	return c
}

// Answer sends the question as user content with the fixed system prompt and
// returns the trimmed completion. API failures are surfaced as answer text.
func (c *OpenAIClient) Answer(ctx context.Context, question string) string {
	if c.client == nil {
		return MissingKeyAnswer
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "Error using OpenAI API: " + err.Error()
	}
	if len(resp.Choices) == 0 {
		return "Error using OpenAI API: no response choices"
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
