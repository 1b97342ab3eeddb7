package huffman

import (
	"golang.org/x/exp/constraints"
)

// saturatingAdd returns a+b, clamped to the maximum value of T instead of
// wrapping around.
func saturatingAdd[T constraints.Unsigned](a, b T) T {
	sum := a + b
	if sum < a {
		return ^T(0)
	}
	return sum
}
