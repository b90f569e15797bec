package coinbase

import "strconv"

// diceHexDigits is how many trailing hex characters of the block hash feed the
// roll. Six bytes of entropy; a 64-bit parse is mandatory since the value does
// not fit 32 bits and truncation would change deployed roll history.
const diceHexDigits = 12

// DiceFromHash derives the deterministic dice value in [1,6] from a block
// hash. The last six bytes of the hash are read as one big-endian unsigned
// integer and mapped onto a die face. Degenerate input (absent, shorter than
// twelve hex characters, or not hex) yields the defined fallback value 1.
func DiceFromHash(hashHex string) int {
	if len(hashHex) < diceHexDigits {
		return 1
	}
	tail := hashHex[len(hashHex)-diceHexDigits:]
	v, err := strconv.ParseUint(tail, 16, 64)
	if err != nil {
		return 1
	}
	return int(v%6) + 1
}

// Parity reports the parity of a dice value: 0 even, 1 odd. It is computed on
// the final 1-based face, matching the display convention 1,3,5=odd and
// 2,4,6=even, not on the raw modulus before the offset.
func Parity(dice int) int {
	return dice % 2
}
