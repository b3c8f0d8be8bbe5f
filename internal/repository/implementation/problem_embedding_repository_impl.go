package implementation

import (
	"context"

	"vehicle-diagnosis-be/internal/model"
	"vehicle-diagnosis-be/internal/repository/contract"
	"vehicle-diagnosis-be/pkg/diagnosis/retrieval"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

const embeddingBatchSize = 100

type ProblemEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewProblemEmbeddingRepository(db *gorm.DB) contract.ProblemEmbeddingRepository {
	return &ProblemEmbeddingRepositoryImpl{db: db}
}

// ReplaceAll swaps the whole index in one transaction so readers never see a partial catalog
func (r *ProblemEmbeddingRepositoryImpl) ReplaceAll(ctx context.Context, entries []retrieval.EmbeddedEntry) error {
	models := make([]*model.ProblemEmbedding, len(entries))
	for i, e := range entries {
		models[i] = &model.ProblemEmbedding{
			ProblemId:      e.ProblemID,
			Name:           e.Name,
			Descriptions:   e.Descriptions,
			Position:       i,
			EmbeddingValue: pgvector.NewVector(e.Vector),
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProblemEmbedding{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(models, embeddingBatchSize).Error
	})
}

func (r *ProblemEmbeddingRepositoryImpl) Nearest(ctx context.Context, vector []float32, k int) ([]retrieval.Neighbor, error) {
	if k <= 0 {
		return nil, nil
	}

	type result struct {
		model.ProblemEmbedding
		Distance float64
	}
	var results []result

	// <-> is pgvector's Euclidean distance
	err := r.db.WithContext(ctx).
		Table(model.ProblemEmbedding{}.TableName()).
		Select("*, embedding_value <-> ? AS distance", pgvector.NewVector(vector)).
		Order("distance ASC").
		Order("position ASC").
		Limit(k).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	neighbors := make([]retrieval.Neighbor, len(results))
	for i, res := range results {
		neighbors[i] = retrieval.Neighbor{
			Entry: retrieval.Entry{
				ProblemID:    res.ProblemId,
				Name:         res.Name,
				Descriptions: []string(res.Descriptions),
			},
			Distance: res.Distance,
		}
	}
	return neighbors, nil
}

func (r *ProblemEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProblemEmbedding{}).Count(&count).Error
	return count, err
}
