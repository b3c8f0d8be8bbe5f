package anthropic

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/pkg/llm"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultMaxTokens = 1024

type AnthropicProvider struct {
	client *sdk.Client
	model  string
}

var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: &client, model: model}, nil
}

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Temperature: 0.7, MaxTokens: defaultMaxTokens, Model: p.model}, opts...)

	params := sdk.MessageNewParams{
		Model:     sdk.Model(options.Model),
		MaxTokens: int64(options.MaxTokens),
	}
	if options.Temperature > 0 {
		params.Temperature = sdk.Float(options.Temperature)
	}

	// System turns travel outside the message list
	for _, m := range history {
		switch m.Role {
		case llm.RoleSystem:
			params.System = append(params.System, sdk.TextBlockParam{Text: m.Content})
		case llm.RoleAssistant:
			params.Messages = append(params.Messages, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", &llm.ErrProviderUnavailable{Err: err}
	}

	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", &llm.ErrEmptyResponse{Provider: "anthropic"}
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
