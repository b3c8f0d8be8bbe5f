package factory

import (
	"context"
	"testing"
	"time"

	"vehicle-diagnosis-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider_Unsupported(t *testing.T) {
	_, err := NewLLMProvider(context.Background(), Config{Provider: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unsupported LLM provider")
}

func TestNewLLMProvider_MissingKey(t *testing.T) {
	for _, name := range []string{"groq", "openai", "anthropic", "gemini"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewLLMProvider(context.Background(), Config{Provider: name, Model: "m"})
			assert.ErrorContains(t, err, "API key is required")
		})
	}
}

func TestNewLLMProvider_WrapsWithTimeout(t *testing.T) {
	p, err := NewLLMProvider(context.Background(), Config{Provider: "mock", Timeout: time.Second})
	require.NoError(t, err)
	_, ok := p.(*llm.TimeoutProvider)
	assert.True(t, ok)
}

func TestNewLLMProvider_Ollama(t *testing.T) {
	p, err := NewLLMProvider(context.Background(), Config{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
