package factory

import (
	"context"
	"fmt"
	"time"

	"vehicle-diagnosis-be/pkg/llm"
	"vehicle-diagnosis-be/pkg/llm/anthropic"
	"vehicle-diagnosis-be/pkg/llm/gemini"
	"vehicle-diagnosis-be/pkg/llm/ollama"
	"vehicle-diagnosis-be/pkg/llm/openai"
)

type Config struct {
	Provider string // ollama | groq | openai | anthropic | gemini | mock
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

// NewLLMProvider builds the configured oracle backend wrapped with the call timeout
func NewLLMProvider(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	var base llm.LLMProvider
	var err error

	switch cfg.Provider {
	case "ollama":
		base, err = ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model)
	case "groq":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = openai.GroqBaseURL
		}
		base, err = openai.NewOpenAIProvider(cfg.APIKey, baseURL, cfg.Model)
	case "openai":
		base, err = openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case "anthropic":
		base, err = anthropic.NewAnthropicProvider(cfg.APIKey, cfg.Model)
	case "gemini":
		base, err = gemini.NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
	case "mock":
		base = llm.NewMockProvider()
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return llm.WithTimeout(base, cfg.Timeout), nil
}
