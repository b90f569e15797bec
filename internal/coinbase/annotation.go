// Package coinbase decodes the metadata annotation a CronCoin miner embeds in
// the coinbase null-data output and derives the per-block dice roll from the
// block hash. All functions are pure and never fail on malformed input; they
// report absence instead.
package coinbase

import (
	"regexp"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"
)

// annotationPrefix marks the start of a miner annotation inside the decoded
// null-data payload.
const annotationPrefix = "CRN:"

const (
	printableMin = 32
	printableMax = 126
)

var (
	annotationRe = regexp.MustCompile(annotationPrefix + `[^\x00]*`)
	diceFieldRe  = regexp.MustCompile(`R=(\d+)`)
	parityRe     = regexp.MustCompile(`P=(\d+)`)
	heightRe     = regexp.MustCompile(`H=(\d+)`)
	// The timestamp value runs until the next ":<UPPERCASE>=" field start, so
	// colons inside the value itself (HH:MM) survive.
	timeRe = regexp.MustCompile(`T=(.*?)(:[A-Z]=|$)`)
)

// Annotation holds the fields parsed from a coinbase annotation. A nil field
// means the annotation did not carry it. Dice and Parity are legacy values
// superseded by the hash-derived roll on current chains.
type Annotation struct {
	Dice      *int
	Parity    *int
	Timestamp *string
	Height    *int64
}

// DecodeASCII decodes even-length hex byte pair by byte pair into text,
// replacing anything outside the printable ASCII range with a dot. Malformed
// input (odd length, non-hex pairs) truncates the output at the first bad
// pair instead of failing.
func DecodeASCII(hexStr string) string {
	out := make([]byte, 0, len(hexStr)/2)
	for i := 0; i+1 < len(hexStr); i += 2 {
		b, err := strconv.ParseUint(hexStr[i:i+2], 16, 8)
		if err != nil {
			break
		}
		if b < printableMin || b > printableMax {
			out = append(out, '.')
			continue
		}
		out = append(out, byte(b))
	}
	return string(out)
}

// ExtractAnnotation decodes a null-data script payload and returns the first
// annotation run found in it. The run starts at the literal prefix and ends
// before a NUL byte or at the end of the decoded text.
func ExtractAnnotation(scriptHex string) (string, bool) {
	if scriptHex == "" {
		return "", false
	}
	match := annotationRe.FindString(DecodeASCII(scriptHex))
	if match == "" {
		return "", false
	}
	return match, true
}

// ParseFields extracts the recognized annotation fields from a matched
// annotation text. It reports absence when none of the four patterns match.
func ParseFields(text string) (*Annotation, bool) {
	var ann Annotation
	found := false

	if m := diceFieldRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			ann.Dice = &v
			found = true
		}
	}
	if m := parityRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			ann.Parity = &v
			found = true
		}
	}
	if m := timeRe.FindStringSubmatch(text); m != nil {
		v := m[1]
		ann.Timestamp = &v
		found = true
	}
	if m := heightRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			ann.Height = &v
			found = true
		}
	}

	if !found {
		return nil, false
	}
	return &ann, true
}

// FindAnnotation scans the coinbase transaction's outputs in order and returns
// the first annotation that parses out of a null-data output. Blocks without
// transactions, coinbases without outputs, and non-annotated coinbases all
// report absence.
func FindAnnotation(block *btcjson.GetBlockVerboseTxResult) (*Annotation, bool) {
	if block == nil || len(block.Tx) == 0 {
		return nil, false
	}
	for _, vout := range block.Tx[0].Vout {
		if vout.ScriptPubKey.Type != "nulldata" {
			continue
		}
		text, ok := ExtractAnnotation(vout.ScriptPubKey.Hex)
		if !ok {
			continue
		}
		if ann, ok := ParseFields(text); ok {
			return ann, true
		}
	}
	return nil, false
}
