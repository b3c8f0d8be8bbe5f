package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProvider_EncodeBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)

		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)

		vectors := make([][]float32, len(req.Input))
		for i := range req.Input {
			vectors[i] = []float32{float32(i), 1}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"model": req.Model, "embeddings": vectors})
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "")
	require.NoError(t, err)

	vectors, err := p.EncodeBatch(context.Background(), []string{"brake squeal", "engine knock"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{0, 1}, {1, 1}}, vectors)

	single, err := p.Encode(context.Background(), "brake squeal")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, single)
}

func TestOllamaProvider_EmptyBatchSkipsCall(t *testing.T) {
	p, err := NewOllamaProvider("http://127.0.0.1:1", "")
	require.NoError(t, err)

	vectors, err := p.EncodeBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestNewProvider_Unsupported(t *testing.T) {
	_, err := NewProvider(context.Background(), "word2vec", "", "", "")
	assert.ErrorContains(t, err, "unsupported embedding provider")
}
