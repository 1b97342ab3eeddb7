package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decoder turns a textual bit string produced by Encoder back into bytes by
// walking the Huffman tree.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder.  The Tree must not be modified afterward.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t}
}

// Decode attempts to decode a complete Code into a Symbol.  It returns false
// if hc stops short of a leaf or runs past one.
func (d Decoder) Decode(hc Code) (Symbol, bool) {
	return d.tree.Lookup(hc)
}

// DecodeStream reads '0'/'1' digits from r and writes the decoded bytes to
// w, stopping after the Sentinel's Code.  The Sentinel itself is not
// written.  It returns the number of bytes written.
//
// If r ends before the Sentinel has been decoded, or holds a byte that is not
// a digit, DecodeStream fails with a *MalformedStreamError.
//
func (d Decoder) DecodeStream(w io.Writer, r io.Reader) (int64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	bw := bufio.NewWriter(w)

	var total int64
	var offset int64
	root := d.tree.Root()
	id := root
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return total, d.fail(bw, &MalformedStreamError{Reason: Truncated, Offset: offset})
		}
		if err != nil {
			return total, d.fail(bw, &IOError{Op: "read", Err: err})
		}

		node := d.tree.Node(id)
		switch ch {
		case '0':
			id = node.Left
		case '1':
			id = node.Right
		default:
			return total, d.fail(bw, &MalformedStreamError{Reason: BadDigit, Offset: offset, Byte: ch})
		}
		offset++

		node = d.tree.Node(id)
		if !node.IsLeaf() {
			continue
		}
		if node.Symbol == Sentinel {
			break
		}
		if err := bw.WriteByte(byte(node.Symbol)); err != nil {
			return total, &IOError{Op: "write", Err: err}
		}
		total++
		id = root
	}

	if err := bw.Flush(); err != nil {
		return total, &IOError{Op: "write", Err: err}
	}
	return total, nil
}

// fail flushes whatever was decoded before the failure, then returns err.
func (d Decoder) fail(bw *bufio.Writer, err error) error {
	_ = bw.Flush()
	return err
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Leaves are listed in depth-first order.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", d.tree.Root())
	d.tree.Walk(func(id NodeID, path Code) {
		node := d.tree.Node(id)
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", path, node.Symbol)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
