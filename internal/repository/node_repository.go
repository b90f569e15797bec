// Package repository provides access to the croncoind node and the redis cache.
package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// NodeRepository wraps the node rpcclient with metrics instrumentation. Calls
// without a typed rpcclient equivalent in a Bitcoin-derived chain go through
// RawRequest, mirroring how the node's own CLI talks to it.
type NodeRepository struct {
	client  *rpcclient.Client
	metrics RPCMetrics
}

// NewNodeRepository constructs an instrumented node repository.
func NewNodeRepository(client *rpcclient.Client, metrics RPCMetrics) *NodeRepository {
	return &NodeRepository{
		client:  client,
		metrics: metrics,
	}
}

// Shutdown tears down the underlying RPC client.
func (r *NodeRepository) Shutdown() {
	r.client.Shutdown()
	r.client.WaitForShutdown()
}

// GetBlockCount returns the latest block height.
func (r *NodeRepository) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *NodeRepository) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerboseTx returns a verbose block with full transactions.
func (r *NodeRepository) GetBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_block_verbose_tx", err, started)
	}()
	return r.client.GetBlockVerboseTx(blockHash)
}

// BlockchainInfo returns the raw getblockchaininfo result.
func (r *NodeRepository) BlockchainInfo() (json.RawMessage, error) {
	return r.raw("getblockchaininfo")
}

// MempoolInfo returns the raw getmempoolinfo result.
func (r *NodeRepository) MempoolInfo() (json.RawMessage, error) {
	return r.raw("getmempoolinfo")
}

// NetworkInfo returns the raw getnetworkinfo result.
func (r *NodeRepository) NetworkInfo() (json.RawMessage, error) {
	return r.raw("getnetworkinfo")
}

// PeerInfo returns the raw getpeerinfo result.
func (r *NodeRepository) PeerInfo() (json.RawMessage, error) {
	return r.raw("getpeerinfo")
}

// MiningInfo returns the raw getmininginfo result.
func (r *NodeRepository) MiningInfo() (json.RawMessage, error) {
	return r.raw("getmininginfo")
}

// RawTransaction returns the decoded getrawtransaction result for a txid.
func (r *NodeRepository) RawTransaction(txid string) (json.RawMessage, error) {
	return r.raw("getrawtransaction", txid, true)
}

// WalletInfo returns the raw getwalletinfo result.
func (r *NodeRepository) WalletInfo() (json.RawMessage, error) {
	return r.raw("getwalletinfo")
}

// Balances returns the raw getbalances result.
func (r *NodeRepository) Balances() (json.RawMessage, error) {
	return r.raw("getbalances")
}

// ListTransactions returns the most recent wallet transactions.
func (r *NodeRepository) ListTransactions(count int) (json.RawMessage, error) {
	return r.raw("listtransactions", "*", count)
}

// NewAddress asks the wallet for a fresh receive address.
func (r *NodeRepository) NewAddress() (string, error) {
	res, err := r.raw("getnewaddress")
	if err != nil {
		return "", err
	}
	var address string
	if err := json.Unmarshal(res, &address); err != nil {
		return "", fmt.Errorf("decode getnewaddress result: %w", err)
	}
	return address, nil
}

// SendToAddress sends the amount to the address and returns the txid.
func (r *NodeRepository) SendToAddress(address string, amount float64) (string, error) {
	res, err := r.raw("sendtoaddress", address, amount)
	if err != nil {
		return "", err
	}
	var txid string
	if err := json.Unmarshal(res, &txid); err != nil {
		return "", fmt.Errorf("decode sendtoaddress result: %w", err)
	}
	return txid, nil
}

// GenerateToAddress mines blocks paying to the address and returns their hashes.
func (r *NodeRepository) GenerateToAddress(numBlocks int64, address string) (json.RawMessage, error) {
	return r.raw("generatetoaddress", numBlocks, address)
}

func (r *NodeRepository) raw(method string, args ...interface{}) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(method, err, started)
	}()

	params := make([]json.RawMessage, 0, len(args))
	for i, arg := range args {
		encoded, merr := json.Marshal(arg)
		if merr != nil {
			return nil, fmt.Errorf("marshal %s param %d: %w", method, i, merr)
		}
		params = append(params, encoded)
	}
	return r.client.RawRequest(method, params)
}
