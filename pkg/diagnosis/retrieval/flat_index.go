package retrieval

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/embedding"
	"vehicle-diagnosis-be/pkg/store"

	"gonum.org/v1/gonum/floats"
)

type snapshot struct {
	entries []Entry
	vectors [][]float64
}

// FlatIndex is an exhaustive in-memory L2 index. Readers work on an immutable
// snapshot; Rebuild swaps in a new one.
type FlatIndex struct {
	embedder embedding.EmbeddingProvider
	logger   logger.ILogger

	current   atomic.Pointer[snapshot]
	rebuildMu sync.Mutex
}

var _ Index = &FlatIndex{}

func NewFlatIndex(embedder embedding.EmbeddingProvider, logger logger.ILogger) *FlatIndex {
	return &FlatIndex{embedder: embedder, logger: logger}
}

func (f *FlatIndex) Rebuild(ctx context.Context, entries []Entry) error {
	f.rebuildMu.Lock()
	defer f.rebuildMu.Unlock()

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text()
	}

	raw, err := f.embedder.EncodeBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed catalog: %w", err)
	}
	if len(raw) != len(entries) {
		return fmt.Errorf("embed catalog: expected %d vectors, got %d", len(entries), len(raw))
	}

	next := &snapshot{
		entries: append([]Entry(nil), entries...),
		vectors: make([][]float64, len(raw)),
	}
	for i, v := range raw {
		next.vectors[i] = toFloat64(v)
	}

	f.current.Store(next)

	f.logger.Info("INDEX", "Flat index rebuilt", map[string]interface{}{
		"entries": len(entries),
	})
	return nil
}

func (f *FlatIndex) Retrieve(ctx context.Context, query string, k int) ([]store.Candidate, error) {
	snap := f.current.Load()
	if snap == nil || len(snap.entries) == 0 || k <= 0 {
		return []store.Candidate{}, nil
	}

	raw, err := f.embedder.Encode(ctx, query)
	if err != nil {
		f.logger.Error("INDEX", "Failed to embed query", map[string]interface{}{
			"error": err.Error(),
		})
		return []store.Candidate{}, nil
	}
	q := toFloat64(raw)

	type hit struct {
		pos      int
		distance float64
	}
	hits := make([]hit, 0, len(snap.entries))
	diff := make([]float64, len(q))
	for i, v := range snap.vectors {
		if len(v) != len(q) {
			f.logger.Warn("INDEX", "Dimension mismatch, entry skipped", map[string]interface{}{
				"problem_id": snap.entries[i].ProblemID,
				"want":       len(q),
				"got":        len(v),
			})
			continue
		}
		floats.SubTo(diff, q, v)
		hits = append(hits, hit{pos: i, distance: floats.Dot(diff, diff)})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].distance < hits[b].distance
	})
	if len(hits) > k {
		hits = hits[:k]
	}

	out := make([]store.Candidate, len(hits))
	for i, h := range hits {
		out[i] = snap.entries[h.pos].candidate(h.distance)
	}
	return out, nil
}

func (f *FlatIndex) Size(_ context.Context) (int, error) {
	snap := f.current.Load()
	if snap == nil {
		return 0, nil
	}
	return len(snap.entries), nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
