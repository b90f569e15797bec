// Package safe converts between integer types with range checks.
package safe

import "fmt"

// Uint64 converts a signed integer to uint64, rejecting negative values
// instead of letting them wrap.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
