package embedding

import (
	"context"
	"fmt"
)

// NewProvider selects the embedding backend by name
func NewProvider(ctx context.Context, provider, model, baseURL, apiKey string) (EmbeddingProvider, error) {
	switch provider {
	case "ollama":
		return NewOllamaProvider(baseURL, model)
	case "gemini":
		return NewGeminiProvider(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}
