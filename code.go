package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// maxBitsPerCode bounds the depth of any tree this package can represent:
// a strict binary tree with MaxSymbol+1 leaves is at most MaxSymbol deep.
const maxBitsPerCode = 512

const bitsPerWord = 64

// Code represents a sequence of bits: the path from the root of a tree to one
// of its leaves, where 0 means "left" and 1 means "right".
//
// Code is comparable, so it can be used as a map key.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// words holds the actual values of the bits.  Bit i of the code is
	// bit (i % 64) of words[i / 64].
	words [maxBitsPerCode / bitsPerWord]uint64
}

// MakeCode is a convenience function that constructs a short Code.  The least
// significant bit of bits is the first bit.
func MakeCode(size byte, bits uint32) Code {
	assert.Assertf(size <= 32, "size %d > 32", size)
	var hc Code
	hc.Size = uint16(size)
	hc.words[0] = uint64(bits) & (1<<size - 1)
	return hc
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	var hc Code
	if len(str) > maxBitsPerCode {
		return hc, malformedf("path of %d bits exceeds the maximum of %d", len(str), maxBitsPerCode)
	}
	for i := 0; i < len(str); i++ {
		switch ch := str[i]; ch {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, malformedf("invalid character %q at offset %d of path %q", ch, i, str)
		}
	}
	return hc, nil
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return int(hc.Size)
}

// Bit returns the i'th bit of this Code.  Bit 0 is the first bit, the one
// closest to the root.
func (hc Code) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return hc.words[i/bitsPerWord]&(1<<(uint(i)%bitsPerWord)) != 0
}

// Append returns a new Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code size %d would exceed %d", hc.Size+1, maxBitsPerCode)
	if bit {
		i := uint(hc.Size)
		hc.words[i/bitsPerWord] |= 1 << (i % bitsPerWord)
	}
	hc.Size++
	return hc
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// WriteTo writes the bits of this Code to w, first bit first.
func (hc Code) WriteTo(w BitWriter) error {
	for i := 0; i < int(hc.Size); i++ {
		if err := w.WriteBool(hc.Bit(i)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// Bitstring returns the bits of this Code as a string of '0' and '1'
// characters, first bit first.  The empty Code yields "".
func (hc Code) Bitstring() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		if hc.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Bitstring())
}

var _ fmt.Stringer = Code{}

// compare orders codes by size, then bit by bit.
func (hc Code) compare(other Code) int {
	if hc.Size != other.Size {
		if hc.Size < other.Size {
			return -1
		}
		return 1
	}
	for i := 0; i < int(hc.Size); i++ {
		a, b := hc.Bit(i), other.Bit(i)
		if a != b {
			if b {
				return -1
			}
			return 1
		}
	}
	return 0
}
