package retrieval

import (
	"context"
	"fmt"
	"sync"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/embedding"
	"vehicle-diagnosis-be/pkg/store"
)

// EmbeddedEntry is an entry with its vector, as persisted
type EmbeddedEntry struct {
	Entry
	Vector []float32
}

// Neighbor is a stored entry with its Euclidean (not squared) distance to a query
type Neighbor struct {
	Entry
	Distance float64
}

// VectorStore persists entry vectors and answers k-nearest queries by L2 distance
type VectorStore interface {
	ReplaceAll(ctx context.Context, entries []EmbeddedEntry) error
	Nearest(ctx context.Context, vector []float32, k int) ([]Neighbor, error)
	Count(ctx context.Context) (int64, error)
}

// StoreIndex keeps the index in a vector store so every replica sees the same catalog
type StoreIndex struct {
	embedder  embedding.EmbeddingProvider
	store     VectorStore
	logger    logger.ILogger
	rebuildMu sync.Mutex
}

var _ Index = &StoreIndex{}

func NewStoreIndex(embedder embedding.EmbeddingProvider, vs VectorStore, logger logger.ILogger) *StoreIndex {
	return &StoreIndex{embedder: embedder, store: vs, logger: logger}
}

func (s *StoreIndex) Rebuild(ctx context.Context, entries []Entry) error {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text()
	}

	vectors, err := s.embedder.EncodeBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed catalog: %w", err)
	}
	if len(vectors) != len(entries) {
		return fmt.Errorf("embed catalog: expected %d vectors, got %d", len(entries), len(vectors))
	}

	rows := make([]EmbeddedEntry, len(entries))
	for i, e := range entries {
		rows[i] = EmbeddedEntry{Entry: e, Vector: vectors[i]}
	}

	if err := s.store.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("replace index rows: %w", err)
	}

	s.logger.Info("INDEX", "Vector store index rebuilt", map[string]interface{}{
		"entries": len(rows),
	})
	return nil
}

func (s *StoreIndex) Retrieve(ctx context.Context, query string, k int) ([]store.Candidate, error) {
	if k <= 0 {
		return []store.Candidate{}, nil
	}

	vector, err := s.embedder.Encode(ctx, query)
	if err != nil {
		s.logger.Error("INDEX", "Failed to embed query", map[string]interface{}{
			"error": err.Error(),
		})
		return []store.Candidate{}, nil
	}

	neighbors, err := s.store.Nearest(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("nearest problems: %w", err)
	}

	out := make([]store.Candidate, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Entry.candidate(n.Distance * n.Distance)
	}
	return out, nil
}

func (s *StoreIndex) Size(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
