package service

import (
	"context"
	"testing"
	"time"

	"vehicle-diagnosis-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReindexTopic = "catalog.reindex"

func newReindexHarness(t *testing.T, idx *fakeIndex) (IReindexService, IPublisherService) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	publisher := NewPublisherService(testReindexTopic, pubSub)
	svc := NewReindexService(pubSub, publisher, testReindexTopic, fakeFactory{newFixture()}, idx, logger.NewNopLogger())
	return svc, publisher
}

func TestReindexService_RebuildLoadsCatalogInOrder(t *testing.T) {
	idx := &fakeIndex{}
	svc, _ := newReindexHarness(t, idx)

	n, err := svc.Rebuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rebuilt := idx.rebuilds()
	require.Len(t, rebuilt, 1)
	entries := rebuilt[0]
	assert.Equal(t, "SP001", entries[0].ProblemID)
	assert.Equal(t, "SP003", entries[2].ProblemID)
	assert.Equal(t, []string{"Slow crank on cold mornings"}, entries[2].Descriptions)
}

func TestReindexService_ConsumesQueuedRequests(t *testing.T) {
	idx := &fakeIndex{}
	svc, publisher := newReindexHarness(t, idx)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.Consume(ctx))

	require.NoError(t, publisher.Publish(ctx, []byte("not json")))
	require.NoError(t, svc.Request(ctx))

	assert.Eventually(t, func() bool {
		return len(idx.rebuilds()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, idx.rebuilds(), 1, "malformed job is dropped")
}
