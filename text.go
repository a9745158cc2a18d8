package hufftree

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteText writes the text header for a tree: for each leaf, in preorder,
// one line holding the decimal symbol and one line holding its code.
//
// A single-leaf tree has no text representation, because its only code is
// empty; WriteText returns ErrDegenerateTree for such a tree.
func WriteText(w io.Writer, t *Tree) error {
	if t.root == nil {
		return errors.Wrap(ErrDegenerateTree, "cannot write text header for an empty tree")
	}
	if t.IsDegenerate() {
		return errors.Wrapf(ErrDegenerateTree, "cannot write text header for single symbol %d", t.root.symbol)
	}

	bw := bufio.NewWriter(w)
	_ = t.root.walkLeaves(Code{}, func(leaf *Node, hc Code) error {
		bw.WriteString(strconv.Itoa(int(leaf.symbol)))
		bw.WriteByte('\n')
		bw.WriteString(hc.Bitstring())
		bw.WriteByte('\n')
		return nil
	})
	return errors.WithStack(bw.Flush())
}

// maxTextLine bounds the length of a single line of a text header.  The
// longest legal line is a maxBitsPerCode path plus a "\r".
const maxTextLine = maxBitsPerCode + 16

// ReadText reads a text header, as written by WriteText, until r is
// exhausted.  Symbol lines must be written exactly as WriteText writes them:
// plain decimal, with no sign and no leading zeros.  Blank lines are allowed
// at the end of the input and nowhere else.
func ReadText(r io.Reader) (*Tree, error) {
	pb := newPathBuilder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64), maxTextLine)
	lineNum := 0

	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNum++
		return strings.TrimSuffix(sc.Text(), "\r"), true
	}

	for {
		symbolLine, ok := nextLine()
		if !ok {
			break
		}

		if strings.TrimSpace(symbolLine) == "" {
			if err := skipBlankLines(nextLine, &lineNum); err != nil {
				return nil, err
			}
			break
		}

		symbol, err := strconv.ParseInt(symbolLine, 10, 32)
		if err != nil || strconv.FormatInt(symbol, 10) != symbolLine {
			return nil, malformedf("line %d: invalid symbol %q", lineNum, symbolLine)
		}
		if !Symbol(symbol).IsValid() {
			return nil, malformedf("line %d: symbol %d out of range [0, %d]", lineNum, symbol, MaxSymbol)
		}

		pathLine, ok := nextLine()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, scanError(err, lineNum+1)
			}
			return nil, malformedf("line %d: symbol %d has no code", lineNum, symbol)
		}
		if pathLine == "" {
			return nil, malformedf("line %d: empty code for symbol %d", lineNum, symbol)
		}

		hc, err := ParseCode(pathLine)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		if err := pb.insert(Symbol(symbol), hc); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, scanError(err, lineNum+1)
	}

	return pb.finish()
}

// skipBlankLines consumes the rest of the input, which must be blank.
func skipBlankLines(nextLine func() (string, bool), lineNum *int) error {
	for {
		line, ok := nextLine()
		if !ok {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			return malformedf("line %d: unexpected %q after a blank line", *lineNum, line)
		}
	}
}

func scanError(err error, lineNum int) error {
	if err == bufio.ErrTooLong {
		return malformedf("line %d: longer than %d bytes", lineNum, maxTextLine)
	}
	return errors.WithStack(err)
}
