package hufftree

import (
	"bufio"
	"container/heap"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Build constructs a Huffman tree from a frequency table.  The argument lists
// the frequency (i.e. number of occurrences) of each byte value, one for each
// Symbol, except that any Symbol not represented in the list is assumed to
// have a frequency of 0.
//
// The tree always contains one EOFSymbol leaf with a frequency of 1.  If no
// byte value has a nonzero frequency, that leaf is the entire tree.
//
// Ties between equal weights are broken by insertion order: byte leaves in
// ascending Symbol order, then the EOFSymbol leaf, then branches in the order
// they are created.  The resulting shape is therefore deterministic.
func Build(frequencies []uint32) *Tree {
	assert.Assertf(len(frequencies) <= numByteSymbols, "len(frequencies) %d > %d", len(frequencies), numByteSymbols)

	// Step 1: build a minheap of leaves.

	h := weightHeap{list: make([]weightedNode, 0, len(frequencies)+1)}
	for symbol := Symbol(0); symbol < Symbol(len(frequencies)); symbol++ {
		if freq := frequencies[symbol]; freq != 0 {
			h.add(NewLeaf(symbol), uint64(freq))
		}
	}
	h.add(NewLeaf(EOFSymbol), 1)
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new branch, and pushing the branch back onto the minheap.
	// The first node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		h.push(NewBranch(a.node, b.node), a.weight+b.weight)
	}

	root := heap.Pop(&h).(weightedNode)
	return &Tree{root: root.node}
}

// CountFrequencies returns the frequency table of a byte sequence, suitable
// for passing to Build.
func CountFrequencies(data []byte) []uint32 {
	frequencies := make([]uint32, numByteSymbols)
	for _, b := range data {
		frequencies[b]++
	}
	return frequencies
}

// ReadFrequencies is like CountFrequencies, but consumes a reader until EOF.
func ReadFrequencies(r io.Reader) ([]uint32, error) {
	frequencies := make([]uint32, numByteSymbols)
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return frequencies, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read frequencies")
		}
		frequencies[b]++
	}
}

// type weightedNode + type weightHeap {{{

type weightedNode struct {
	node   *Node
	weight uint64
	seq    uint32
}

type weightHeap struct {
	list    []weightedNode
	nextSeq uint32
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

// add appends a node without restoring the heap property.  Call Init after
// the last add.
func (h *weightHeap) add(node *Node, weight uint64) {
	h.list = append(h.list, weightedNode{node: node, weight: weight, seq: h.nextSeq})
	h.nextSeq++
}

func (h *weightHeap) push(node *Node, weight uint64) {
	heap.Push(h, weightedNode{node: node, weight: weight, seq: h.nextSeq})
	h.nextSeq++
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
