package implementation_test

import (
	"context"
	"log"
	"os"
	"testing"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/model"
	"vehicle-diagnosis-be/internal/repository/implementation"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/database"
	"vehicle-diagnosis-be/pkg/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormRepositories(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS vector;").Error)
	require.NoError(t, db.AutoMigrate(model.All()...))

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	t.Run("Check Embedding Repository", func(t *testing.T) {
		count, err := uow.ProblemEmbeddingRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("ProblemEmbedding count: %d", count)
	})

	t.Run("Problem Create And Find In Transaction", func(t *testing.T) {
		id := "IT_" + uuid.NewString()[:8]
		t.Cleanup(func() { db.Delete(&model.Problem{}, "id = ?", id) })

		tx := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
		require.NoError(t, tx.Begin(ctx))
		err := tx.ProblemRepository().Create(ctx, &entity.Problem{
			Id:                      id,
			Name:                    "Integration squeal",
			Descriptions:            []string{"High pitched squeal"},
			LabourCategory:          "Brakes",
			EstimatedLabourHours:    1,
			EstimatedServiceMinutes: 60,
			PartsNeeded:             []string{"PART_BRK_PAD"},
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		found, err := uow.ProblemRepository().FindOne(ctx, specification.ByID{ID: id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []string{"High pitched squeal"}, found.Descriptions)
		assert.Equal(t, []string{"PART_BRK_PAD"}, found.PartsNeeded)
	})

	t.Run("Conversation Round Trip", func(t *testing.T) {
		repo := implementation.NewConversationRepository(db)
		s := store.NewSession(uuid.NewString(), []store.Candidate{
			{ProblemID: "SP001", ProblemName: "Brake squeal", Score: 0.9},
			{ProblemID: "SP002", ProblemName: "Rotor warp", Score: 0.5},
		})
		s.Symptom = "squealing brakes"
		t.Cleanup(func() { db.Delete(&model.Conversation{}, "id = ?", s.ID) })

		require.NoError(t, repo.Create(ctx, s))

		s.AskedQuestions = append(s.AskedQuestions, "When does it squeal?")
		s.Answers = append(s.Answers, "When braking")
		s.Weights["SP001"] = 1.2
		s.Round = 1
		require.NoError(t, repo.Update(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "squealing brakes", got.Symptom)
		assert.Equal(t, 1, got.Round)
		assert.Equal(t, []string{"When braking"}, got.Answers)
		assert.InDelta(t, 1.2, got.Weights["SP001"], 1e-9)
		assert.Len(t, got.Candidates, 2)

		missing, err := repo.Get(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}
