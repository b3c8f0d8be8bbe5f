package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/diagnosis/retrieval"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IReindexService rebuilds the similarity index from the problem catalog,
// either directly or through jobs queued on the in-process bus
type IReindexService interface {
	Rebuild(ctx context.Context) (int, error)
	Request(ctx context.Context) error
	Consume(ctx context.Context) error
}

type reindexService struct {
	subscriber message.Subscriber
	publisher  IPublisherService
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	index      retrieval.Index
	logger     logger.ILogger
}

func NewReindexService(
	subscriber message.Subscriber,
	publisher IPublisherService,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	index retrieval.Index,
	logger logger.ILogger,
) IReindexService {
	return &reindexService{
		subscriber: subscriber,
		publisher:  publisher,
		topicName:  topicName,
		uowFactory: uowFactory,
		index:      index,
		logger:     logger,
	}
}

// LoadCatalogEntries reads every problem in catalog order as index entries
func LoadCatalogEntries(ctx context.Context, uowFactory unitofwork.RepositoryFactory) ([]retrieval.Entry, error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	problems, err := uow.ProblemRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, fmt.Errorf("load problems: %w", err)
	}

	entries := make([]retrieval.Entry, len(problems))
	for i, p := range problems {
		entries[i] = retrieval.Entry{
			ProblemID:    p.Id,
			Name:         p.Name,
			Descriptions: p.Descriptions,
		}
	}
	return entries, nil
}

func (rs *reindexService) Rebuild(ctx context.Context) (int, error) {
	entries, err := LoadCatalogEntries(ctx, rs.uowFactory)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	if err := rs.index.Rebuild(ctx, entries); err != nil {
		return 0, fmt.Errorf("rebuild index: %w", err)
	}

	rs.logger.Info("REINDEX", "Similarity index rebuilt", map[string]interface{}{
		"problems":    len(entries),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return len(entries), nil
}

func (rs *reindexService) Request(ctx context.Context) error {
	payload, err := json.Marshal(dto.PublishReindexMessage{RequestedAt: time.Now().UTC().Format(time.RFC3339)})
	if err != nil {
		return err
	}
	return rs.publisher.Publish(ctx, payload)
}

func (rs *reindexService) Consume(ctx context.Context) error {
	messages, err := rs.subscriber.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (rs *reindexService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishReindexMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		rs.logger.Error("REINDEX", "Dropping malformed reindex message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if _, err := rs.Rebuild(ctx); err != nil {
		// Readers keep the previous snapshot; a later request retries
		rs.logger.Error("REINDEX", "Reindex failed", map[string]interface{}{
			"requested_at": payload.RequestedAt,
			"error":        err.Error(),
		})
	}
	msg.Ack()
}
