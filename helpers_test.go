package hufftree

import (
	"io"
	"strings"
)

// bitBuffer is an in-memory BitReader and BitWriter with exact bit
// granularity: reading past the last written bit returns io.EOF.
type bitBuffer struct {
	bits []bool
	pos  int
}

func parseBits(str string) *bitBuffer {
	bb := &bitBuffer{}
	for _, ch := range str {
		switch ch {
		case '0':
			bb.bits = append(bb.bits, false)
		case '1':
			bb.bits = append(bb.bits, true)
		}
	}
	return bb
}

func (bb *bitBuffer) ReadBool() (bool, error) {
	if bb.pos >= len(bb.bits) {
		return false, io.EOF
	}
	bit := bb.bits[bb.pos]
	bb.pos++
	return bit, nil
}

func (bb *bitBuffer) WriteBool(bit bool) error {
	bb.bits = append(bb.bits, bit)
	return nil
}

func (bb *bitBuffer) String() string {
	var buf strings.Builder
	for _, bit := range bb.bits {
		if bit {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

var (
	_ BitReader = (*bitBuffer)(nil)
	_ BitWriter = (*bitBuffer)(nil)
)

// makeTestTree builds the tree for "aab"-style input:
//
//	a=0  c=100  d=101  EOF=110  b=111
func makeTestTree() *Tree {
	frequencies := make([]uint32, 256)
	frequencies['a'] = 5
	frequencies['b'] = 2
	frequencies['c'] = 1
	frequencies['d'] = 1
	return Build(frequencies)
}

// makeWideTestTree builds a tree over symbols 0 .. 5 plus EOFSymbol.
func makeWideTestTree() *Tree {
	return Build([]uint32{5, 9, 12, 13, 16, 45})
}
