package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/coinbase"
	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

// ExplorerService serves block lookups enriched with the reconciled roll
// record.
type ExplorerService struct {
	node   NodeGateway
	logger *zap.Logger
}

// NewExplorerService builds an ExplorerService.
func NewExplorerService(node NodeGateway, logger *zap.Logger) *ExplorerService {
	return &ExplorerService{
		node:   node,
		logger: logger.Named("explorer"),
	}
}

// BlockByHash fetches a verbose block by hash and attaches its roll.
func (s *ExplorerService) BlockByHash(ctx context.Context, hashHex string) (*model.BlockSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := chainhash.NewHashFromStr(hashHex)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hashHex, err)
	}
	return s.summarize(hash)
}

// BlockByHeight resolves the hash for a height and fetches the block.
func (s *ExplorerService) BlockByHeight(ctx context.Context, height int64) (*model.BlockSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.node.GetBlockHash(height)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return s.summarize(hash)
}

func (s *ExplorerService) summarize(hash *chainhash.Hash) (*model.BlockSummary, error) {
	block, err := s.node.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	summary := &model.BlockSummary{Block: block}
	if roll, ok := coinbase.ResolveRoll(block); ok {
		summary.Roll = roll
	} else {
		s.logger.Debug("block has no resolvable roll", zap.String("hash", hash.String()))
	}
	return summary, nil
}
