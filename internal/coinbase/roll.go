package coinbase

import "github.com/btcsuite/btcd/btcjson"

// Roll is the reconciled per-block record served to the dashboard. Dice and
// Parity always come from the block hash; the annotation only contributes the
// timestamp and a recorded height fallback.
type Roll struct {
	Dice      int     `json:"dice"`
	Parity    int     `json:"parity"`
	Timestamp *string `json:"timestamp,omitempty"`
	Height    int64   `json:"height"`
}

// ResolveRoll combines the optional coinbase annotation with the hash-derived
// dice value for a block. Hash-derived dice and parity override any legacy
// R/P the annotation carries, so a stale annotation can never contradict the
// hash. An absent annotation timestamp stays absent; the display layer owns
// any fallback formatting. Only a nil block yields an absent result.
func ResolveRoll(block *btcjson.GetBlockVerboseTxResult) (*Roll, bool) {
	if block == nil {
		return nil, false
	}

	dice := DiceFromHash(block.Hash)
	roll := &Roll{
		Dice:   dice,
		Parity: Parity(dice),
		Height: block.Height,
	}

	if ann, ok := FindAnnotation(block); ok {
		roll.Timestamp = ann.Timestamp
		if ann.Height != nil {
			roll.Height = *ann.Height
		}
	}

	return roll, true
}
