package hufftree

import (
	"github.com/pkg/errors"
)

// BitReader is a source of single bits.  *bitio.Reader from
// github.com/icza/bitio satisfies it.
type BitReader interface {
	ReadBool() (bool, error)
}

// BitWriter is a sink of single bits.  *bitio.Writer from
// github.com/icza/bitio satisfies it.
type BitWriter interface {
	WriteBool(bool) error
}

// readSymbol reads a symbolBits-wide field, least significant bit first.
func readSymbol(r BitReader) (Symbol, error) {
	var symbol Symbol
	for i := 0; i < symbolBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return InvalidSymbol, errors.WithStack(err)
		}
		if bit {
			symbol |= 1 << i
		}
	}
	return symbol, nil
}

// writeSymbol writes a symbolBits-wide field, least significant bit first.
func writeSymbol(w BitWriter, symbol Symbol) error {
	for i := 0; i < symbolBits; i++ {
		if err := w.WriteBool(symbol&(1<<i) != 0); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
