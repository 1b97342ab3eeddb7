package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a Node within its Tree.  A node's NodeID is also its
// sequence number: leaves use their Symbol's byte value (0..255) and compound
// nodes are numbered from 256 upward in the order they were merged.
type NodeID uint16

// NodeKind distinguishes leaves from compound nodes.
type NodeKind byte

const (
	// LeafNode holds a single Symbol.
	LeafNode NodeKind = iota

	// CompoundNode owns exactly two children.
	CompoundNode
)

// Node is a single vertex of a Huffman tree.
type Node struct {
	Kind NodeKind

	// Freq is the Symbol's frequency for a leaf, or the (saturating) sum of
	// the children's frequencies for a compound node.
	Freq uint64

	// Symbol is only meaningful when Kind == LeafNode.
	Symbol Symbol

	// Left and Right are only meaningful when Kind == CompoundNode.
	Left  NodeID
	Right NodeID
}

// IsLeaf returns true iff this Node is a leaf.
func (node Node) IsLeaf() bool {
	return node.Kind == LeafNode
}

const (
	numMerges = NumSymbols - 1
	numNodes  = NumSymbols + numMerges
)

// Tree is an immutable Huffman tree over the full byte alphabet.  All nodes
// live in a single arena owned by the Tree.
type Tree struct {
	nodes [numNodes]Node
}

// BuildTree constructs the Huffman tree for a smoothed FrequencyTable.
//
// The two nodes merged at each step are the lowest by (frequency, sequence
// number); the first becomes the left child and the second the right child.
// This tie-break is what makes the resulting codes reproducible.
//
func BuildTree(freqs FrequencyTable) *Tree {
	t := new(Tree)

	// Step 1: one leaf per Symbol, all in a minheap.

	h := nodeHeap{tree: t, list: make([]NodeID, 0, NumSymbols)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		freq := freqs[symbol]
		assert.Assertf(freq != 0, "frequency of symbol %d is 0; FrequencyTable must be smoothed", symbol)
		t.nodes[symbol] = Node{Kind: LeafNode, Freq: freq, Symbol: Symbol(symbol)}
		h.list = append(h.list, NodeID(symbol))
	}
	h.Init()

	// Step 2: pop the two lowest nodes, merge them into a new compound
	// node, and push the compound back.  The heap order (freq, sequence)
	// is total, so this pops exactly what a linear scan for the minimum
	// would select.

	next := NodeID(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		t.nodes[next] = Node{
			Kind:  CompoundNode,
			Freq:  saturatingAdd(t.nodes[a].Freq, t.nodes[b].Freq),
			Left:  a,
			Right: b,
		}
		heap.Push(&h, next)
		next++
	}

	assert.Assertf(next == numNodes, "expected %d merges, got %d", numMerges, int(next)-NumSymbols)
	assert.Assertf(heap.Pop(&h).(NodeID) == t.Root(), "root is not the last compound node")
	return t
}

// Root returns the NodeID of the root, which is always the last compound node
// created.
func (t *Tree) Root() NodeID {
	return NodeID(numNodes - 1)
}

// Node returns the Node with the given NodeID.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node depth-first, parents before children and the left
// subtree entirely before the right.  path is the Code of the edges from the
// root to the node.
func (t *Tree) Walk(fn func(id NodeID, path Code)) {
	// stackItem.x tracks where we are at each level:
	//   x=0 → visit the node itself
	//   x=1 → descend left
	//   x=2 → descend right
	//   x=3 → done, pop

	type stackItem struct {
		id   NodeID
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{id: t.Root()})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		node := t.nodes[top.id]
		switch x {
		case 0:
			fn(top.id, top.path)
			if node.IsLeaf() {
				stack = stack[:len(stack)-1]
			}
		case 1:
			stack = append(stack, stackItem{id: node.Left, path: top.path.Append(0)})
		case 2:
			stack = append(stack, stackItem{id: node.Right, path: top.path.Append(1)})
		default:
			stack = stack[:len(stack)-1]
		}
	}
}

// Lookup follows the path hc from the root.  It returns the leaf's Symbol
// and true iff hc ends exactly on a leaf.
func (t *Tree) Lookup(hc Code) (Symbol, bool) {
	node := t.nodes[t.Root()]
	for i := 0; i < int(hc.Size); i++ {
		if node.IsLeaf() {
			return 0, false
		}
		if hc.Bit(i) == 0 {
			node = t.nodes[node.Left]
		} else {
			node = t.nodes[node.Right]
		}
	}
	if !node.IsLeaf() {
		return 0, false
	}
	return node.Symbol, true
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	fa, fb := h.tree.nodes[a].Freq, h.tree.nodes[b].Freq
	if fa != fb {
		return fa < fb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
