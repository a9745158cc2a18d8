package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// CodeTable maps each symbol of a Tree to its Code.
type CodeTable struct {
	codes   map[Symbol]Code
	minSize uint16
	maxSize uint16
}

// Codes walks the tree and assigns each leaf the path leading to it: 0 for
// each left branch taken, 1 for each right branch.  Leaves are visited in
// preorder, left first.
//
// If the tree is a single leaf, that leaf is assigned the empty Code.
func (t *Tree) Codes() CodeTable {
	ct := CodeTable{codes: make(map[Symbol]Code)}
	var hasMinMax bool
	_ = t.root.walkLeaves(Code{}, func(leaf *Node, hc Code) error {
		ct.codes[leaf.symbol] = hc
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
		return nil
	})
	return ct
}

// Lookup returns the Code for a symbol.  The second return value is false if
// the symbol does not appear in the tree.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() uint16 {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() uint16 {
	return ct.maxSize
}

// Symbols returns the symbols in the table, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ct.codes))
	for symbol := range ct.codes {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the table as a map from symbol to a string of '0' and '1'
// characters.
func (ct CodeTable) Strings() map[Symbol]string {
	out := make(map[Symbol]string, len(ct.codes))
	for symbol, hc := range ct.codes {
		out[symbol] = hc.Bitstring()
	}
	return out
}

// EncodeSymbol writes the Code for one symbol to w.
func (ct CodeTable) EncodeSymbol(w BitWriter, symbol Symbol) error {
	hc, found := ct.codes[symbol]
	if !found {
		return errors.Wrapf(ErrSymbolRange, "symbol %d has no code", symbol)
	}
	if hc.Size == 0 && symbol != EOFSymbol {
		return errors.Wrapf(ErrDegenerateTree, "symbol %d has an empty code", symbol)
	}
	return hc.WriteTo(w)
}

// Encode writes the Codes for every byte of data to w, followed by the Code
// for EOFSymbol.
func (ct CodeTable) Encode(w BitWriter, data []byte) error {
	for _, b := range data {
		if err := ct.EncodeSymbol(w, Symbol(b)); err != nil {
			return err
		}
	}
	return ct.EncodeSymbol(w, EOFSymbol)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, ordered by symbol.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
