package contract

import "vehicle-diagnosis-be/pkg/diagnosis/retrieval"

// ProblemEmbeddingRepository is the pgvector-backed store behind the shared similarity index
type ProblemEmbeddingRepository interface {
	retrieval.VectorStore
}
