package huffman

import (
	"strconv"
)

// Symbol represents one byte of the input alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.  Every Symbol always has a code.
const NumSymbols = 256

// Sentinel is the reserved end-of-transmission Symbol.  The Encoder appends
// its code after the last input byte, and the Decoder stops when it sees it.
//
// A literal 0x04 byte in the input is therefore undecodable: decoding stops
// at its first occurrence.
//
const Sentinel = Symbol(4)

// String returns the decimal byte value of this Symbol.
func (sym Symbol) String() string {
	return strconv.FormatUint(uint64(sym), 10)
}
