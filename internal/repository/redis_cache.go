package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

// recentFeedLimit bounds the recent-blocks feed length in redis.
const recentFeedLimit = 100

// CacheRepository stores dashboard snapshots in redis. Everything here is an
// ephemeral cache; the node remains the source of truth.
type CacheRepository struct {
	rdb     *redis.Client
	network model.Network
}

// NewCacheRepository constructs a cache repository for a network.
func NewCacheRepository(rdb *redis.Client, network model.Network) *CacheRepository {
	return &CacheRepository{rdb: rdb, network: network}
}

func (r *CacheRepository) richlistKey() string {
	return fmt.Sprintf("croncoin:%s:richlist", r.network)
}

func (r *CacheRepository) recentKey() string {
	return fmt.Sprintf("croncoin:%s:blocks:recent", r.network)
}

// RichListSnapshot loads the cached snapshot, or nil when none is cached.
func (r *CacheRepository) RichListSnapshot(ctx context.Context) (*model.RichListSnapshot, error) {
	data, err := r.rdb.Get(ctx, r.richlistKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get richlist snapshot: %w", err)
	}

	var snapshot model.RichListSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode richlist snapshot: %w", err)
	}
	return &snapshot, nil
}

// StoreRichListSnapshot replaces the cached snapshot. Freshness is keyed on
// the snapshot height, so no TTL applies.
func (r *CacheRepository) StoreRichListSnapshot(ctx context.Context, snapshot *model.RichListSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode richlist snapshot: %w", err)
	}
	if err := r.rdb.Set(ctx, r.richlistKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("store richlist snapshot: %w", err)
	}
	return nil
}

// PushRecentBlocks prepends summaries to the recent-blocks feed and trims it.
func (r *CacheRepository) PushRecentBlocks(ctx context.Context, blocks []model.RecentBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(blocks))
	for _, block := range blocks {
		data, err := json.Marshal(block)
		if err != nil {
			return fmt.Errorf("encode recent block %d: %w", block.Height, err)
		}
		values = append(values, data)
	}

	_, err := r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.recentKey(), values...)
		pipe.LTrim(ctx, r.recentKey(), 0, recentFeedLimit-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push recent blocks: %w", err)
	}
	return nil
}

// RecentBlocks returns up to limit newest-first feed entries.
func (r *CacheRepository) RecentBlocks(ctx context.Context, limit int) ([]model.RecentBlock, error) {
	if limit <= 0 || limit > recentFeedLimit {
		limit = recentFeedLimit
	}

	raw, err := r.rdb.LRange(ctx, r.recentKey(), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read recent blocks: %w", err)
	}

	blocks := make([]model.RecentBlock, 0, len(raw))
	for _, item := range raw {
		var block model.RecentBlock
		if err := json.Unmarshal([]byte(item), &block); err != nil {
			return nil, fmt.Errorf("decode recent block entry: %w", err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
