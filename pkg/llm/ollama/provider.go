package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vehicle-diagnosis-be/pkg/llm"

	ollamaapi "github.com/ollama/ollama/api"
)

type OllamaProvider struct {
	ModelName string
	Client    *ollamaapi.Client
}

// Ensure OllamaProvider implements LLMProvider
var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ollama base url: %w", err)
	}

	return &OllamaProvider{
		ModelName: modelName,
		Client:    ollamaapi.NewClient(base, &http.Client{Timeout: 120 * time.Second}),
	}, nil
}

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Temperature: 0.7, Model: o.ModelName}, opts...)

	messages := make([]ollamaapi.Message, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = llm.RoleAssistant
		}
		messages[i] = ollamaapi.Message{Role: role, Content: msg.Content}
	}

	stream := false
	req := &ollamaapi.ChatRequest{
		Model:    options.Model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": options.Temperature,
		},
	}
	if options.MaxTokens > 0 {
		req.Options["num_predict"] = options.MaxTokens
	}

	var out strings.Builder
	err := o.Client.Chat(ctx, req, func(res ollamaapi.ChatResponse) error {
		out.WriteString(res.Message.Content)
		return nil
	})
	if err != nil {
		return "", &llm.ErrProviderUnavailable{Err: fmt.Errorf("ollama chat: %w", err)}
	}

	if out.Len() == 0 {
		return "", &llm.ErrEmptyResponse{Provider: "ollama"}
	}
	return out.String(), nil
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return o.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
