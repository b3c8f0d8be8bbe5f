package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"vehicle-diagnosis-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

// GroqBaseURL serves the OpenAI-compatible Groq API
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAIProvider talks to any OpenAI-compatible chat completion endpoint
type OpenAIProvider struct {
	client *goopenai.Client
	model  string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: goopenai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Client exposes the underlying SDK client for audio endpoints
func (p *OpenAIProvider) Client() *goopenai.Client {
	return p.client
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Temperature: 0.7, Model: p.model}, opts...)

	messages := make([]goopenai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		role := goopenai.ChatMessageRoleUser
		switch m.Role {
		case llm.RoleAssistant:
			role = goopenai.ChatMessageRoleAssistant
		case llm.RoleSystem:
			role = goopenai.ChatMessageRoleSystem
		}
		messages = append(messages, goopenai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	req := goopenai.ChatCompletionRequest{
		Model:       options.Model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &llm.ErrEmptyResponse{Provider: "openai"}
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func mapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusBadRequest {
		return fmt.Errorf("openai rejected request: %w", err)
	}
	return &llm.ErrProviderUnavailable{Err: err}
}
