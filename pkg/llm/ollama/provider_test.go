package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vehicle-diagnosis-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProvider_Chat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"Does it squeal when braking?"},"done":true}` + "\n"))
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3")
	require.NoError(t, err)

	out, err := p.Generate(context.Background(), "ask", llm.WithTemperature(0.3), llm.WithMaxTokens(200))
	require.NoError(t, err)
	assert.Equal(t, "Does it squeal when braking?", out)

	assert.Equal(t, "llama3", got["model"])
	assert.Equal(t, false, got["stream"])
	opts := got["options"].(map[string]any)
	assert.Equal(t, 0.3, opts["temperature"])
	assert.Equal(t, float64(200), opts["num_predict"])
}

func TestOllamaProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model not loaded"}`))
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "ask")
	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}
