// Package service implements the dashboard use cases on top of the node
// gateway and the cache.
package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeGateway is the slice of node RPC the block-reading services need.
	NodeGateway interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerboseTx(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error)
	}

	// AddressDecoder extracts payout addresses from an output.
	AddressDecoder interface {
		Addresses(vout btcjson.Vout) ([]string, error)
	}

	// SnapshotCache stores rich-list snapshots between scans.
	SnapshotCache interface {
		RichListSnapshot(ctx context.Context) (*model.RichListSnapshot, error)
		StoreRichListSnapshot(ctx context.Context, snapshot *model.RichListSnapshot) error
	}

	// RecentBlocksSink accepts block summaries discovered by the watcher.
	RecentBlocksSink interface {
		Add(ctx context.Context, block model.RecentBlock) error
	}

	// RecentBlocksStore persists batched feed entries.
	RecentBlocksStore interface {
		PushRecentBlocks(ctx context.Context, blocks []model.RecentBlock) error
	}

	// RichListMetrics observes rich-list scan outcomes.
	RichListMetrics interface {
		ObserveBuild(err error, height int64, started time.Time)
		ObserveCacheHit()
	}

	// WatcherMetrics observes chain watcher progress.
	WatcherMetrics interface {
		ObserveBlock(err error, height int64, started time.Time)
	}
)
