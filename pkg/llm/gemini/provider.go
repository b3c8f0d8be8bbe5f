package gemini

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/pkg/llm"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Temperature: 0.7, Model: p.model}, opts...)

	temp := float32(options.Temperature)
	config := &genai.GenerateContentConfig{Temperature: &temp}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case llm.RoleSystem:
			config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: m.Content}}}
		case llm.RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, options.Model, contents, config)
	if err != nil {
		return "", &llm.ErrProviderUnavailable{Err: err}
	}

	text := result.Text()
	if text == "" {
		return "", &llm.ErrEmptyResponse{Provider: "gemini"}
	}
	return text, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
