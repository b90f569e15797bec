package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
	"github.com/choikj7007-ai/croncoin-dashboard/pkg/safe"
	"github.com/choikj7007-ai/croncoin-dashboard/pkg/workerpool"
)

const (
	defaultScanWorkers = 8
	// scanChunkSize heights are fetched in parallel, then applied in order so
	// spends always see the outputs they consume.
	scanChunkSize = 256
	// richListLimit caps how many addresses a snapshot exposes.
	richListLimit = 100
	// scanRPCBudget paces block fetches so a full scan cannot starve the node.
	scanRPCBudget = 200
)

// RichListService builds address balances from a full UTXO scan of the chain.
type RichListService struct {
	node    NodeGateway
	decoder AddressDecoder
	cache   SnapshotCache
	metrics RichListMetrics
	logger  *zap.Logger
	workers int
	rl      ratelimit.Limiter

	mu sync.Mutex
}

// NewRichListService builds a RichListService.
func NewRichListService(
	node NodeGateway,
	decoder AddressDecoder,
	cache SnapshotCache,
	metrics RichListMetrics,
	logger *zap.Logger,
) (*RichListService, error) {
	if metrics == nil {
		return nil, errors.New("richlist metrics is required")
	}
	if cache == nil {
		return nil, errors.New("richlist snapshot cache is required")
	}

	return &RichListService{
		node:    node,
		decoder: decoder,
		cache:   cache,
		metrics: metrics,
		logger:  logger.Named("richlist"),
		workers: defaultScanWorkers,
		rl:      ratelimit.New(scanRPCBudget),
	}, nil
}

// Build returns the rich list at the current tip, reusing the cached snapshot
// while the tip is unchanged. Only one scan runs at a time.
func (s *RichListService) Build(ctx context.Context) (*model.RichListSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tip, err := s.node.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get block count: %w", err)
	}

	cached, err := s.cache.RichListSnapshot(ctx)
	if err != nil {
		s.logger.Warn("snapshot cache read failed, rescanning", zap.Error(err))
	} else if cached != nil && cached.Height == tip {
		s.metrics.ObserveCacheHit()
		return cached, nil
	}

	started := time.Now()
	snapshot, err := s.scan(ctx, tip)
	s.metrics.ObserveBuild(err, tip, started)
	if err != nil {
		return nil, err
	}

	if err := s.cache.StoreRichListSnapshot(ctx, snapshot); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
	s.logger.Info("rich list rebuilt",
		zap.Int64("height", tip),
		zap.Int("addresses", snapshot.TotalAddresses),
		zap.Duration("took", time.Since(started)),
	)
	return snapshot, nil
}

type utxoEntry struct {
	address string
	value   uint64
}

func (s *RichListService) scan(ctx context.Context, tip int64) (*model.RichListSnapshot, error) {
	utxos := make(map[string]utxoEntry)
	balances := make(map[string]int64)

	for chunkStart := int64(0); chunkStart <= tip; chunkStart += scanChunkSize {
		chunkEnd := chunkStart + scanChunkSize - 1
		if chunkEnd > tip {
			chunkEnd = tip
		}

		blocks, err := s.fetchChunk(ctx, chunkStart, chunkEnd)
		if err != nil {
			return nil, err
		}

		// Blocks apply strictly in height order within and across chunks.
		for height := chunkStart; height <= chunkEnd; height++ {
			block := blocks[height]
			if block == nil {
				return nil, fmt.Errorf("scan missing block at height %d", height)
			}
			if err := s.applyBlock(block, utxos, balances); err != nil {
				return nil, err
			}
		}
	}

	return buildSnapshot(tip, balances), nil
}

func (s *RichListService) fetchChunk(ctx context.Context, from, to int64) (map[int64]*btcjson.GetBlockVerboseTxResult, error) {
	heights := make([]int64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}

	blocks := make(map[int64]*btcjson.GetBlockVerboseTxResult, len(heights))
	var mu sync.Mutex

	err := workerpool.ForEach(ctx, s.workers, heights, func(ctx context.Context, height int64) error {
		s.rl.Take()
		if err := ctx.Err(); err != nil {
			return err
		}

		hash, err := s.node.GetBlockHash(height)
		if err != nil {
			return fmt.Errorf("get block hash at height %d: %w", height, err)
		}
		block, err := s.node.GetBlockVerboseTx(hash)
		if err != nil {
			return fmt.Errorf("get block %s: %w", hash, err)
		}

		mu.Lock()
		blocks[height] = block
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (s *RichListService) applyBlock(block *btcjson.GetBlockVerboseTxResult, utxos map[string]utxoEntry, balances map[string]int64) error {
	for _, tx := range block.Tx {
		for _, vin := range tx.Vin {
			if vin.IsCoinBase() {
				continue
			}
			key := outpointKey(vin.Txid, vin.Vout)
			spent, ok := utxos[key]
			if !ok {
				continue
			}
			delete(utxos, key)
			balances[spent.address] -= int64(spent.value)
		}

		for _, vout := range tx.Vout {
			addresses, err := s.decoder.Addresses(vout)
			if err != nil {
				s.logger.Debug("undecodable output skipped",
					zap.String("txid", tx.Txid), zap.Uint32("vout", vout.N), zap.Error(err))
				continue
			}
			if len(addresses) == 0 {
				continue
			}

			amount, err := btcutil.NewAmount(vout.Value)
			if err != nil {
				return fmt.Errorf("tx %s output %d bad value %f", tx.Txid, vout.N, vout.Value)
			}
			value, err := safe.Uint64(int64(amount))
			if err != nil {
				return fmt.Errorf("tx %s output %d bad value %f", tx.Txid, vout.N, vout.Value)
			}

			// Multi-sig outputs are credited to the first address, matching
			// how the dashboard has always attributed balances.
			address := addresses[0]
			utxos[outpointKey(tx.Txid, vout.N)] = utxoEntry{address: address, value: value}
			balances[address] += int64(value)
		}
	}
	return nil
}

func buildSnapshot(tip int64, balances map[string]int64) *model.RichListSnapshot {
	entries := make([]model.RichListEntry, 0, len(balances))
	var supply uint64
	for address, balance := range balances {
		value, err := safe.Uint64(balance)
		if err != nil || value == 0 {
			continue
		}
		entries = append(entries, model.RichListEntry{Address: address, Balance: value})
		supply += value
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].Address < entries[j].Address
	})

	total := len(entries)
	if len(entries) > richListLimit {
		entries = entries[:richListLimit]
	}

	return &model.RichListSnapshot{
		Height:         tip,
		TotalSupply:    supply,
		TotalAddresses: total,
		Addresses:      entries,
	}
}

func outpointKey(txid string, vout uint32) string {
	return fmt.Sprintf("%s:%d", txid, vout)
}
