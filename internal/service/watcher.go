package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/clock"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/coinbase"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

const (
	watcherPollInterval    = 5 * time.Second
	watcherBackoffInterval = 15 * time.Second
)

// ChainWatcherService follows the chain tip and pushes each new block summary
// into the recent-blocks sink.
type ChainWatcherService struct {
	logger  *zap.Logger
	node    NodeGateway
	sink    RecentBlocksSink
	metrics WatcherMetrics

	sleep           func(context.Context, time.Duration) error
	pollInterval    time.Duration
	backoffInterval time.Duration
	lastHeight      int64
}

// NewChainWatcherService builds a watcher that starts from the current tip.
func NewChainWatcherService(
	node NodeGateway,
	sink RecentBlocksSink,
	metrics WatcherMetrics,
	logger *zap.Logger,
) (*ChainWatcherService, error) {
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}
	if sink == nil {
		return nil, errors.New("recent blocks sink is required")
	}

	return &ChainWatcherService{
		logger:          logger.Named("chainWatcher"),
		node:            node,
		sink:            sink,
		metrics:         metrics,
		sleep:           clock.Sleep,
		pollInterval:    watcherPollInterval,
		backoffInterval: watcherBackoffInterval,
		lastHeight:      -1,
	}, nil
}

// Run polls the tip until the context is canceled.
func (s *ChainWatcherService) Run(ctx context.Context) error {
	tip, err := s.node.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get initial block count: %w", err)
	}
	s.lastHeight = tip
	s.logger.Info("watching chain", zap.Int64("tip", tip))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Warn("watch iteration failed, backing off",
				zap.Error(err), zap.Duration("sleep", s.backoffInterval))
			if sleepErr := s.sleep(ctx, s.backoffInterval); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := s.sleep(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

func (s *ChainWatcherService) runOnce(ctx context.Context) error {
	tip, err := s.node.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get block count: %w", err)
	}

	for height := s.lastHeight + 1; height <= tip; height++ {
		started := time.Now()
		block, err := s.fetchRecent(height)
		if err == nil {
			err = s.sink.Add(ctx, block)
		}
		s.metrics.ObserveBlock(err, height, started)
		if err != nil {
			return err
		}

		s.lastHeight = height
		s.logger.Info("new block",
			zap.Int64("height", height),
			zap.String("hash", block.Hash),
			zap.Int("dice", block.Roll.Dice),
		)
	}
	return nil
}

func (s *ChainWatcherService) fetchRecent(height int64) (model.RecentBlock, error) {
	hash, err := s.node.GetBlockHash(height)
	if err != nil {
		return model.RecentBlock{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	block, err := s.node.GetBlockVerboseTx(hash)
	if err != nil {
		return model.RecentBlock{}, fmt.Errorf("get block %s: %w", hash, err)
	}

	roll, _ := coinbase.ResolveRoll(block)
	return model.RecentBlock{
		Height:  block.Height,
		Hash:    block.Hash,
		Time:    block.Time,
		TxCount: len(block.Tx),
		Roll:    roll,
	}, nil
}
