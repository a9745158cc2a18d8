// Package hufftree implements Huffman prefix-code trees for compressing a
// byte stream.  A tree is built once, either from symbol frequencies or from
// one of two serialized headers, and is read-only afterwards.
//
// Two header formats are supported:
//
//	text:   "<symbol>\n<path>\n" for each leaf, in preorder, where path is
//	        the root-to-leaf walk spelled with '0' (left) and '1' (right)
//
//	binary: a preorder bit sequence of "0" (branch) or "1" followed by a
//	        9-bit symbol, least significant bit first (leaf), ending with
//	        the 9-bit TerminatorSymbol
//
// Every tree built from frequencies carries one EOFSymbol leaf, so a decoder
// knows where the payload ends without an out-of-band length.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package hufftree
