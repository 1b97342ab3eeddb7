package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a 256-leaf tree can produce.
const maxBitsPerCode = NumSymbols - 1

const wordBits = 64

// Code represents a root-to-leaf path as a sequence of bits: 0 for a left
// edge, 1 for a right edge.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i lives at
	// Bits[i/64] >> (i%64), i.e. the least significant bit of Bits[0] is
	// the first bit.  Bits beyond Size are always zero, so Codes may be
	// compared with ==.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= wordBits, "size %d > %d", size, wordBits)
	if size < wordBits {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: [4]uint64{bits}}
}

// ParseCode constructs a Code from a string of '0' and '1' digits, first bit
// first.
func ParseCode(digits string) (Code, error) {
	if len(digits) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code too long: got %d bits, max %d", len(digits), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid digit %q at index %d", digits[i], i)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits[i/wordBits]>>(uint(i)%wordBits)) & 1
}

// Append returns a copy of this Code extended by one bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code already holds %d bits", hc.Size)
	i := uint(hc.Size)
	hc.Bits[i/wordBits] |= uint64(bit&1) << (i % wordBits)
	hc.Size++
	return hc
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are
// equal to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	n := uint(prefix.Size)
	for w := uint(0); w*wordBits < n; w++ {
		mask := ^uint64(0)
		if rem := n - w*wordBits; rem < wordBits {
			mask = (uint64(1) << rem) - 1
		}
		if hc.Bits[w]&mask != prefix.Bits[w] {
			return false
		}
	}
	return true
}

// AppendDigits appends the '0'/'1' rendering of this Code to dst.
func (hc Code) AppendDigits(dst []byte) []byte {
	for i := 0; i < int(hc.Size); i++ {
		dst = append(dst, byte('0'+hc.Bit(i)))
	}
	return dst
}

// Digits returns the '0'/'1' rendering of this Code.
func (hc Code) Digits() string {
	return string(hc.AppendDigits(make([]byte, 0, hc.Size)))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
