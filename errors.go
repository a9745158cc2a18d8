package hufftree

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedHeader is returned when a text or binary header violates
	// its grammar.
	ErrMalformedHeader = errors.New("malformed Huffman tree header")

	// ErrTruncatedStream is returned when the bit source runs dry before the
	// EOFSymbol leaf is reached.
	ErrTruncatedStream = errors.New("truncated Huffman stream")

	// ErrDegenerateTree is returned for operations that cannot be carried
	// out on a tree consisting of a single leaf.
	ErrDegenerateTree = errors.New("degenerate Huffman tree")

	// ErrSymbolRange is returned when a symbol cannot be encoded, or cannot
	// be written out as a byte.
	ErrSymbolRange = errors.New("symbol out of range")
)

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedHeader, format, args...)
}
