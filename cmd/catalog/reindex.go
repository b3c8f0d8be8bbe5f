package main

import (
	"context"
	"fmt"

	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/internal/repository/implementation"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/internal/service"
	"vehicle-diagnosis-be/pkg/diagnosis/retrieval"
	"vehicle-diagnosis-be/pkg/embedding"

	"github.com/spf13/cobra"
)

func NewReindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Embed every catalog problem into the pgvector table",
		Long: `Rebuild problem_embeddings from service_problems. Servers running with
SIMILARITY_INDEX=pgvector see the new index immediately.`,
		Args: cobra.NoArgs,
		RunE: runReindex,
	}
}

func runReindex(cmd *cobra.Command, args []string) error {
	printHeader("Similarity index rebuild")

	cfg, db, err := connect()
	if err != nil {
		return err
	}
	ctx := context.Background()

	embedder, err := embedding.NewProvider(ctx,
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		return fmt.Errorf("init embedding provider: %w", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	entries, err := service.LoadCatalogEntries(ctx, uowFactory)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Loaded %d problems", len(entries)))

	index := retrieval.NewStoreIndex(embedder, implementation.NewProblemEmbeddingRepository(db), logger.NewNopLogger())

	s := newSpinner(fmt.Sprintf("Embedding with %s (%s)...", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel))
	s.Start()
	err = index.Rebuild(ctx, entries)
	s.Stop()
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	size, err := index.Size(ctx)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Indexed %d problems", size))
	return nil
}
