package hufftree

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type decoderState byte

const (
	atRoot decoderState = iota
	atNode
	done
)

var decoderStateNames = [...]string{"atRoot", "atNode", "done"}

func (state decoderState) String() string {
	if int(state) < len(decoderStateNames) {
		return decoderStateNames[state]
	}
	return fmt.Sprintf("decoderState(%d)", byte(state))
}

// Decoder walks a Tree one bit at a time to recover symbols from a bit
// source.  Each bit read moves one edge down the tree; reaching a leaf yields
// its symbol and returns to the root.  Reaching the EOFSymbol leaf ends the
// stream.
//
// A Decoder must not be used by more than one goroutine at a time.
type Decoder struct {
	tree  *Tree
	r     BitReader
	cur   *Node
	state decoderState
	err   error
}

// NewDecoder returns a Decoder reading bits from r.
func (t *Tree) NewDecoder(r BitReader) *Decoder {
	return &Decoder{tree: t, r: r, cur: t.root, state: atRoot}
}

// Next decodes the next symbol.
//
// Next returns io.EOF once the EOFSymbol leaf has been reached, and
// ErrTruncatedStream if the bit source is exhausted first.  Either way, every
// later call returns the same error without reading more bits.
func (d *Decoder) Next() (Symbol, error) {
	if d.err != nil {
		return InvalidSymbol, d.err
	}

	for {
		switch d.state {
		case atRoot:
			if d.cur == nil {
				d.fail(errors.Wrap(ErrDegenerateTree, "cannot decode with an empty tree"))
				return InvalidSymbol, d.err
			}
			if d.cur.IsLeaf() && d.cur.symbol != EOFSymbol {
				d.fail(errors.Wrapf(ErrDegenerateTree, "cannot decode a tree whose only symbol is %d", d.cur.symbol))
				return InvalidSymbol, d.err
			}
			d.state = atNode

		case atNode:
			if d.cur.IsLeaf() {
				symbol := d.cur.symbol
				if symbol == EOFSymbol {
					d.state = done
					d.err = io.EOF
					return InvalidSymbol, d.err
				}
				d.cur = d.tree.root
				d.state = atRoot
				return symbol, nil
			}

			bit, err := d.r.ReadBool()
			if err != nil {
				d.fail(errors.Wrapf(ErrTruncatedStream, "bit source: %v", err))
				return InvalidSymbol, d.err
			}
			d.cur = d.cur.Child(bit)

		case done:
			return InvalidSymbol, d.err
		}
	}
}

func (d *Decoder) fail(err error) {
	d.state = done
	d.err = err
}

// Done returns true iff the Decoder has stopped, either at the EOFSymbol leaf
// or because of an error.
func (d *Decoder) Done() bool {
	return d.state == done
}

// DecodeTo decodes symbols until the EOFSymbol leaf, writing each one to w as
// a byte.  It returns the number of bytes written.  Reaching EOFSymbol is not
// an error.
func (d *Decoder) DecodeTo(w io.Writer) (int64, error) {
	var buf [1]byte
	var n int64
	for {
		symbol, err := d.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if !symbol.IsByte() {
			d.fail(errors.Wrapf(ErrSymbolRange, "decoded symbol %d is not a byte", symbol))
			return n, d.err
		}
		buf[0] = byte(symbol)
		if _, err := w.Write(buf[:]); err != nil {
			return n, errors.WithStack(err)
		}
		n++
	}
}

// Decode is a convenience wrapper around NewDecoder and DecodeTo.
func (t *Tree) Decode(r BitReader, w io.Writer) (int64, error) {
	return t.NewDecoder(r).DecodeTo(w)
}

// String returns the decoder's current state, for debugging.
func (d *Decoder) String() string {
	if d.state == atNode && !d.cur.IsLeaf() {
		return fmt.Sprintf("(Huffman decoder %s, at a branch)", d.state)
	}
	return fmt.Sprintf("(Huffman decoder %s)", d.state)
}

var (
	_ fmt.Stringer = decoderState(0)
	_ fmt.Stringer = (*Decoder)(nil)
)
