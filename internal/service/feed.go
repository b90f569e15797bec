package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
	"github.com/choikj7007-ai/croncoin-dashboard/pkg/batcher"
)

const (
	feedFlushSize     = 20
	feedFlushInterval = time.Second
	feedFlushRPS      = 10
)

// BatchingFeed buffers watcher output and flushes it to the recent-blocks
// store in batches, so a burst of mined blocks costs one store write.
type BatchingFeed struct {
	batcher *batcher.Batcher[model.RecentBlock]
}

// NewBatchingFeed wires a batcher in front of the store.
func NewBatchingFeed(store RecentBlocksStore, logger *zap.Logger) *BatchingFeed {
	return &BatchingFeed{
		batcher: batcher.New(
			logger.Named("recentFeed"),
			store.PushRecentBlocks,
			feedFlushSize,
			feedFlushInterval,
			feedFlushRPS,
		),
	}
}

// Start begins background flushing.
func (f *BatchingFeed) Start(ctx context.Context) {
	f.batcher.Start(ctx)
}

// Stop flushes pending entries and stops the background loop.
func (f *BatchingFeed) Stop() {
	f.batcher.Stop()
}

// Add queues one block summary for the feed.
func (f *BatchingFeed) Add(ctx context.Context, block model.RecentBlock) error {
	return f.batcher.Add(ctx, block)
}
