package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Encoder turns bytes into a textual bit string, one '0' or '1' character
// per bit.
type Encoder struct {
	table   *CodeTable
	digits  *[NumSymbols][]byte
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from a CodeTable.  The table is copied.
func (e *Encoder) Init(table *CodeTable) {
	copied := *table

	var digits [NumSymbols][]byte
	for symbol, hc := range copied {
		digits[symbol] = hc.AppendDigits(make([]byte, 0, hc.Size))
	}

	*e = Encoder{
		table:   &copied,
		digits:  &digits,
		minSize: copied.MinSize(),
		maxSize: copied.MaxSize(),
	}
}

// Encode returns the Code for a Symbol.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.table[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (e Encoder) SizeBySymbol() []byte {
	return e.table.SizeBySymbol()
}

// EncodeStream reads r to exhaustion and writes the digits of each byte's
// Code to w, followed by the digits of the Sentinel's Code.  It returns the
// number of digits written.
func (e Encoder) EncodeStream(w io.Writer, r io.Reader) (int64, error) {
	var total int64
	var buf [4096]byte
	bw := bufio.NewWriter(w)
	for {
		n, readErr := r.Read(buf[:])
		for _, ch := range buf[:n] {
			nn, err := bw.Write(e.digits[ch])
			total += int64(nn)
			if err != nil {
				return total, &IOError{Op: "write", Err: err}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return total, &IOError{Op: "read", Err: readErr}
		}
	}

	nn, err := bw.Write(e.digits[Sentinel])
	total += int64(nn)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return total, &IOError{Op: "write", Err: err}
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.table {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
