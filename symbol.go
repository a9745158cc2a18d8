package hufftree

// Symbol represents a symbol in a byte-oriented alphabet: the byte values
// 0 .. 255, plus a few reserved values above them.  Negative symbols are not
// valid.
type Symbol int32

const (
	// EOFSymbol marks the logical end of a compressed payload.  It is never
	// a real data byte.
	EOFSymbol = Symbol(256)

	// TerminatorSymbol ends a binary header.  It is a protocol marker and
	// does not appear as a tree node written by this package.
	TerminatorSymbol = Symbol(257)

	// MaxSymbol is the maximum symbol that fits in a binary header.
	MaxSymbol = Symbol(1<<symbolBits - 1)

	// InvalidSymbol is returned by some functions to clearly indicate that no
	// symbol is being returned.  Branch nodes also carry it.
	InvalidSymbol = Symbol(-1)
)

// symbolBits is the width of a symbol field in a binary header.
const symbolBits = 9

// numByteSymbols is the size of a frequency table for byte data.
const numByteSymbols = 256

// IsByte returns true iff this symbol stands for a single data byte.
func (s Symbol) IsByte() bool {
	return s >= 0 && s < numByteSymbols
}

// IsValid returns true iff this symbol can be stored in a tree.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}
