package hufftree

import (
	"github.com/pkg/errors"
)

// WriteBinary writes the binary header for a tree to w.  Nodes are written in
// preorder: a 0 bit for each branch, and a 1 bit followed by the 9-bit symbol
// (least significant bit first) for each leaf.  The header ends with the 9-bit
// TerminatorSymbol, so that the payload can follow on the same bit channel.
func WriteBinary(w BitWriter, t *Tree) error {
	if t.root == nil {
		return errors.Wrap(ErrDegenerateTree, "cannot write binary header for an empty tree")
	}
	if err := writeNode(w, t.root); err != nil {
		return err
	}
	return writeSymbol(w, TerminatorSymbol)
}

func writeNode(w BitWriter, n *Node) error {
	if n.IsLeaf() {
		if err := w.WriteBool(true); err != nil {
			return errors.WithStack(err)
		}
		return writeSymbol(w, n.symbol)
	}
	if err := w.WriteBool(false); err != nil {
		return errors.WithStack(err)
	}
	if err := writeNode(w, n.left); err != nil {
		return err
	}
	return writeNode(w, n.right)
}

// ReadBinary reads a binary header, as written by WriteBinary, including the
// trailing TerminatorSymbol.  Bits after the terminator are left unread.
func ReadBinary(r BitReader) (*Tree, error) {
	br := binaryReader{r: r, seen: make(map[Symbol]struct{})}
	root, err := br.readNode(0)
	if err != nil {
		return nil, err
	}

	terminator, err := readSymbol(r)
	if err != nil {
		return nil, malformedf("missing terminator: %v", err)
	}
	if terminator != TerminatorSymbol {
		return nil, malformedf("expected terminator %d, got %d", TerminatorSymbol, terminator)
	}
	return &Tree{root: root}, nil
}

type binaryReader struct {
	r    BitReader
	seen map[Symbol]struct{}
}

func (br *binaryReader) readNode(depth int) (*Node, error) {
	if depth >= maxBitsPerCode {
		return nil, malformedf("tree deeper than %d levels", maxBitsPerCode)
	}

	isLeaf, err := br.r.ReadBool()
	if err != nil {
		return nil, malformedf("truncated at depth %d: %v", depth, err)
	}

	if isLeaf {
		symbol, err := readSymbol(br.r)
		if err != nil {
			return nil, malformedf("truncated leaf symbol at depth %d: %v", depth, err)
		}
		if _, found := br.seen[symbol]; found {
			return nil, malformedf("duplicate symbol %d", symbol)
		}
		br.seen[symbol] = struct{}{}
		return NewLeaf(symbol), nil
	}

	left, err := br.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := br.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return NewBranch(left, right), nil
}
