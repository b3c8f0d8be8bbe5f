package embedding

import "context"

// EmbeddingProvider defines the interface for generating text embeddings.
// Vectors of one provider always share the same dimension.
type EmbeddingProvider interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	EncodeBatch(ctx context.Context, texts []string) ([][]float32, error)
}
