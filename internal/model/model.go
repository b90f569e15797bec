// Package model defines domain models served by the dashboard backend.
package model

import (
	"github.com/btcsuite/btcd/btcjson"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/coinbase"
)

// Network names the chain flavor the node runs.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// BlockSummary pairs a verbose block with its reconciled roll record.
type BlockSummary struct {
	Block *btcjson.GetBlockVerboseTxResult `json:"block"`
	Roll  *coinbase.Roll                   `json:"roll,omitempty"`
}

// RecentBlock is the compact shape pushed into the recent-blocks feed.
type RecentBlock struct {
	Height  int64          `json:"height"`
	Hash    string         `json:"hash"`
	Time    int64          `json:"time"`
	TxCount int            `json:"tx_count"`
	Roll    *coinbase.Roll `json:"roll,omitempty"`
}

// RichListEntry is one address with its confirmed balance in base units.
type RichListEntry struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// RichListSnapshot is the result of a full-chain UTXO scan at a given height.
type RichListSnapshot struct {
	Height         int64           `json:"height"`
	TotalSupply    uint64          `json:"total_supply"`
	TotalAddresses int             `json:"total_addresses"`
	Addresses      []RichListEntry `json:"addresses"`
}
