package hufftree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Tree is a Huffman prefix-code tree.  A Tree is built once, by Build,
// ReadText, ReadBinary, NewTree, or json.Unmarshal, and is read-only
// afterwards.
//
// The zero Tree is empty: it has no symbols, cannot be written, and decoding
// with it fails with ErrDegenerateTree.
type Tree struct {
	root *Node
}

// NewTree wraps an existing node hierarchy as a Tree.
func NewTree(root *Node) *Tree {
	if root == nil {
		panic(errors.New("hufftree: NewTree called with nil root"))
	}
	return &Tree{root: root}
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// IsDegenerate returns true iff the tree consists of a single leaf.
func (t *Tree) IsDegenerate() bool {
	return t.root != nil && t.root.IsLeaf()
}

// NumSymbols returns the number of leaves in the tree.
func (t *Tree) NumSymbols() int {
	var count int
	_ = t.root.walkLeaves(Code{}, func(*Node, Code) error {
		count++
		return nil
	})
	return count
}

// String returns a brief description of the tree.
func (t *Tree) String() string {
	ct := t.Codes()
	return fmt.Sprintf("(Huffman tree with %d symbols, with code lengths of %d .. %d bits)", ct.Len(), ct.MinSize(), ct.MaxSize())
}

// DebugString is like Dump, but returns the dump as a string.
func (t *Tree) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one line per leaf, ordered by code.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	ct := t.Codes()
	keys := make(byCode, 0, ct.Len())
	for _, hc := range ct.codes {
		keys = append(keys, hc)
	}
	keys.Sort()

	bySymbol := make(map[Code]Symbol, len(keys))
	for symbol, hc := range ct.codes {
		bySymbol[hc] = symbol
	}

	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tLeaf(%s) = %d\n", hc, bySymbol[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type jsonLeaf struct {
	Symbol Symbol `json:"symbol"`
	Code   string `json:"code"`
}

// MarshalJSON encodes the tree as a list of {"symbol", "code"} objects, one
// per leaf, in preorder.
func (t *Tree) MarshalJSON() ([]byte, error) {
	leaves := make([]jsonLeaf, 0, t.NumSymbols())
	_ = t.root.walkLeaves(Code{}, func(leaf *Node, hc Code) error {
		leaves = append(leaves, jsonLeaf{Symbol: leaf.symbol, Code: hc.Bitstring()})
		return nil
	})
	return json.Marshal(leaves)
}

// UnmarshalJSON rebuilds a tree from the output of MarshalJSON.  Unlike the
// text header, a single leaf with an empty code is accepted.
func (t *Tree) UnmarshalJSON(raw []byte) error {
	var leaves []jsonLeaf
	if err := json.Unmarshal(raw, &leaves); err != nil {
		return errors.WithStack(err)
	}

	pb := newPathBuilder()
	for index, leaf := range leaves {
		hc, err := ParseCode(leaf.Code)
		if err != nil {
			return errors.Wrapf(err, "leaf %d", index)
		}
		if err := pb.insert(leaf.Symbol, hc); err != nil {
			return errors.Wrapf(err, "leaf %d", index)
		}
	}

	tree, err := pb.finish()
	if err != nil {
		return err
	}
	*t = *tree
	return nil
}

var (
	_ fmt.Stringer     = (*Tree)(nil)
	_ json.Marshaler   = (*Tree)(nil)
	_ json.Unmarshaler = (*Tree)(nil)
)

// type pathBuilder {{{

// pathBuilder reconstructs a tree from (symbol, code) pairs, as found in the
// text header.  It starts from a placeholder root and grows placeholder
// branches on demand; each leaf is created directly at its final position.
type pathBuilder struct {
	root  *Node
	seen  map[Symbol]struct{}
	count int
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{
		root: &Node{symbol: InvalidSymbol},
		seen: make(map[Symbol]struct{}),
	}
}

func (pb *pathBuilder) insert(symbol Symbol, hc Code) error {
	if !symbol.IsValid() {
		return malformedf("symbol %d out of range [0, %d]", symbol, MaxSymbol)
	}
	if _, found := pb.seen[symbol]; found {
		return malformedf("duplicate symbol %d", symbol)
	}

	if hc.Size == 0 {
		if pb.count != 0 {
			return malformedf("empty code for symbol %d in a tree with other symbols", symbol)
		}
		pb.root = &Node{symbol: symbol}
	} else {
		parent := pb.root
		last := int(hc.Size) - 1
		for i := 0; i <= last; i++ {
			if parent.IsLeaf() {
				return malformedf("code %s for symbol %d runs through leaf %d", hc, symbol, parent.symbol)
			}
			bit := hc.Bit(i)
			child := parent.Child(bit)
			if i == last {
				if child != nil {
					return malformedf("code %s for symbol %d is already occupied", hc, symbol)
				}
				child = &Node{symbol: symbol}
				setChild(parent, bit, child)
			} else if child == nil {
				child = &Node{symbol: InvalidSymbol}
				setChild(parent, bit, child)
			}
			parent = child
		}
	}

	pb.seen[symbol] = struct{}{}
	pb.count++
	return nil
}

func (pb *pathBuilder) finish() (*Tree, error) {
	if pb.count == 0 {
		return nil, malformedf("no symbols")
	}
	if err := checkComplete(pb.root, Code{}); err != nil {
		return nil, err
	}
	return &Tree{root: pb.root}, nil
}

func setChild(parent *Node, bit bool, child *Node) {
	if bit {
		parent.right = child
	} else {
		parent.left = child
	}
}

// checkComplete verifies that every branch below n has both children.
func checkComplete(n *Node, prefix Code) error {
	if n.IsLeaf() {
		return nil
	}
	if n.left == nil {
		return malformedf("branch %s has no left child", prefix)
	}
	if n.right == nil {
		return malformedf("branch %s has no right child", prefix)
	}
	if err := checkComplete(n.left, prefix.Append(false)); err != nil {
		return err
	}
	return checkComplete(n.right, prefix.Append(true))
}

// }}}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i].compare(list[j]) < 0
}

var _ sort.Interface = byCode(nil)

// }}}
