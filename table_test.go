package huffman

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCodeTable_Uniform(t *testing.T) {
	table := BuildCodeTable(BuildTree(profileString(t, "")))

	for symbol, hc := range table {
		assert.Equal(t, fmt.Sprintf("%08b", symbol), hc.Digits())
	}
	assert.Equal(t, byte(8), table.MinSize())
	assert.Equal(t, byte(8), table.MaxSize())
}

func TestBuildCodeTable_AAAB(t *testing.T) {
	table := BuildCodeTable(BuildTree(profileString(t, "AAAB")))

	type testRow struct {
		symbol Symbol
		digits string
	}

	testData := [...]testRow{
		{symbol: 0, digits: "111111110"},
		{symbol: 1, digits: "111111111"},
		{symbol: Sentinel, digits: "00000010"},
		{symbol: 'A', digits: "1111110"},
		{symbol: 'B', digits: "00111111"},
		{symbol: 255, digits: "11111110"},
	}
	for _, row := range testData {
		t.Run(row.symbol.String(), func(t *testing.T) {
			assert.Equal(t, row.digits, table[row.symbol].Digits())
		})
	}
	assert.Equal(t, byte(7), table.MinSize())
	assert.Equal(t, byte(9), table.MaxSize())
}

func TestBuildCodeTable_Abracadabra(t *testing.T) {
	table := BuildCodeTable(BuildTree(profileString(t, "abracadabra")))

	assert.Equal(t, "111101", table['a'].Digits())
	assert.Equal(t, "11111011", table['b'].Digits())
	assert.Equal(t, "11111100", table['r'].Digits())
	assert.Equal(t, "01011011", table['c'].Digits())
	assert.Equal(t, "01011100", table['d'].Digits())
	assert.Equal(t, "111111110", table[Sentinel].Digits())
	assert.Equal(t, byte(6), table.MinSize())
	assert.Equal(t, byte(9), table.MaxSize())
}

func TestBuildCodeTable_PrefixFreeAndComplete(t *testing.T) {
	for _, sample := range []string{"", "AAAB", "abracadabra", "mississippi river banks"} {
		tree := BuildTree(profileString(t, sample))
		table := BuildCodeTable(tree)

		for a := range table {
			require.NotZerof(t, table[a].Size, "sample %q symbol %d", sample, a)

			sym, ok := tree.Lookup(table[a])
			require.True(t, ok)
			require.Equal(t, Symbol(a), sym)

			for b := range table {
				if a != b && table[b].HasPrefix(table[a]) {
					t.Fatalf("sample %q: code(%d) = %s is a prefix of code(%d) = %s", sample, a, table[a], b, table[b])
				}
			}
		}
	}
}

func TestBuildCodeTable_SkewedDepth(t *testing.T) {
	// Each weight just exceeds the subtree built before the previous one,
	// so the tree degenerates into a chain deeper than 64 bits.
	var freqs FrequencyTable
	freqs.Smooth()
	prev, sum := uint64(88), uint64(176)
	for symbol := 176; symbol < NumSymbols; symbol++ {
		w := prev + 1
		freqs[symbol] = w
		prev, sum = sum, sum+w
	}

	tree := BuildTree(freqs)
	require.Equal(t, *linearScanTree(freqs), *tree)

	table := BuildCodeTable(tree)
	assert.Equal(t, byte(87), table.MaxSize())
	assert.Equal(t, byte(1), table[255].Size)

	for symbol, hc := range table {
		sym, ok := tree.Lookup(hc)
		require.True(t, ok)
		require.Equal(t, Symbol(symbol), sym)
	}
}
