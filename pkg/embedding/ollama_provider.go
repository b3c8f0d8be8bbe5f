package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	ollamaapi "github.com/ollama/ollama/api"
)

// OllamaProvider implements EmbeddingProvider for local Ollama models (e.g., nomic-embed-text)
type OllamaProvider struct {
	Client *ollamaapi.Client
	Model  string
}

func NewOllamaProvider(baseURL string, model string) (EmbeddingProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "nomic-embed-text"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ollama base url: %w", err)
	}
	return &OllamaProvider{
		Client: ollamaapi.NewClient(base, &http.Client{Timeout: 60 * time.Second}),
		Model:  model,
	}, nil
}

func (p *OllamaProvider) Encode(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EncodeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (p *OllamaProvider) EncodeBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	resp, err := p.Client.Embed(ctx, &ollamaapi.EmbedRequest{
		Model: p.Model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("ollama embed: expected %d vectors, got %d", len(texts), len(resp.Embeddings))
	}
	return resp.Embeddings, nil
}
