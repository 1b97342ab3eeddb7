package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.
type CodeTable [NumSymbols]Code

// BuildCodeTable derives the CodeTable for a Tree.  Each leaf's Code is its
// path from the root; compound nodes get no Code.
func BuildCodeTable(t *Tree) CodeTable {
	var table CodeTable
	var seen [NumSymbols]bool
	t.Walk(func(id NodeID, path Code) {
		node := t.Node(id)
		if !node.IsLeaf() {
			return
		}
		assert.Assertf(!seen[node.Symbol], "symbol %d reached twice", node.Symbol)
		assert.Assertf(path.Size != 0, "symbol %d has an empty code", node.Symbol)
		seen[node.Symbol] = true
		table[node.Symbol] = path
	})
	for symbol := range seen {
		assert.Assertf(seen[symbol], "symbol %d is unreachable", symbol)
	}
	return table
}

// MinSize is the bit length of the shortest code.
func (table *CodeTable) MinSize() byte {
	minSize := table[0].Size
	for _, hc := range table {
		if hc.Size < minSize {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (table *CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range table {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol.
func (table *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range table {
		out[symbol] = hc.Size
	}
	return out
}
