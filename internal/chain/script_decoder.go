// Package chain implements script-level helpers for CronCoin, a Bitcoin-derived
// chain whose scripts follow standard Bitcoin classification.
package chain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

// ScriptDecoder extracts human-readable addresses from ScriptPubKey results.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder using params of the provided network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// Addresses returns the addresses an output pays to. Node-reported address
// fields win; otherwise the script hex is decoded locally. Unspendable or
// non-standard outputs yield no addresses.
func (d *ScriptDecoder) Addresses(vout btcjson.Vout) ([]string, error) {
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return append([]string(nil), vout.ScriptPubKey.Addresses...), nil
	}
	if vout.ScriptPubKey.Address != "" {
		return []string{vout.ScriptPubKey.Address}, nil
	}
	if vout.ScriptPubKey.Hex == "" {
		return nil, nil
	}

	scriptBytes, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return nil, err
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, d.params)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}

// IsNullData reports whether an output is an unspendable data carrier. The
// node's classification tag is trusted when present; otherwise the script is
// classified locally.
func IsNullData(vout btcjson.Vout) bool {
	if vout.ScriptPubKey.Type != "" {
		return vout.ScriptPubKey.Type == "nulldata"
	}
	scriptBytes, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return false
	}
	return txscript.GetScriptClass(scriptBytes) == txscript.NullDataTy
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
