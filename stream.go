package hufftree

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Compress writes data to w as a self-describing bit stream: the binary header
// of a tree built from data's byte frequencies, then the code for each byte,
// then the code for EOFSymbol.  The final byte is padded with zero bits.
func Compress(w io.Writer, data []byte) error {
	tree := Build(CountFrequencies(data))

	bw := bitio.NewWriter(w)
	if err := WriteBinary(bw, tree); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err := tree.Codes().Encode(bw, data); err != nil {
		return errors.Wrap(err, "failed to write payload")
	}
	return errors.WithStack(bw.Close())
}

// Decompress reverses Compress.
func Decompress(r io.Reader) ([]byte, error) {
	br := bitio.NewReader(r)
	tree, err := ReadBinary(br)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if _, err := tree.Decode(br, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
