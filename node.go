package hufftree

import (
	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree: either a leaf carrying a Symbol, or a
// branch carrying exactly two children.  Each node is owned by at most one
// parent.  Nodes cannot be modified after construction.
type Node struct {
	left   *Node
	right  *Node
	symbol Symbol
}

// NewLeaf constructs a leaf node carrying the given symbol.
func NewLeaf(symbol Symbol) *Node {
	assert.Assertf(symbol.IsValid(), "leaf symbol %d out of range [0, %d]", symbol, MaxSymbol)
	return &Node{symbol: symbol}
}

// NewBranch constructs a branch node.  The new node takes ownership of both
// children.
func NewBranch(left, right *Node) *Node {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	return &Node{left: left, right: right, symbol: InvalidSymbol}
}

// IsLeaf returns true iff this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.symbol >= 0
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for a branch.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Left returns the left (0) child of a branch, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right (1) child of a branch, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Child returns the child selected by one bit of a code.
func (n *Node) Child(bit bool) *Node {
	if bit {
		return n.right
	}
	return n.left
}

// walkLeaves visits every leaf below n in preorder, left first, passing the
// path from n to the leaf.  The walk stops at the first error.
func (n *Node) walkLeaves(prefix Code, fn func(leaf *Node, hc Code) error) error {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return fn(n, prefix)
	}
	if err := n.left.walkLeaves(prefix.Append(false), fn); err != nil {
		return err
	}
	return n.right.walkLeaves(prefix.Append(true), fn)
}
