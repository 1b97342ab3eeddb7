// Package huffman implements a static Huffman codec over the byte alphabet.
//
// A Codec is built from the byte frequencies of a sample (see Profile).  Every
// one of the 256 byte values is given a code, even those absent from the
// sample, so any input can be encoded.  Encoded output is a textual bit
// string: one '0' or '1' character per bit, terminated by the code for
// Sentinel.
//
// The tree is built by repeatedly merging the two nodes of lowest frequency,
// breaking ties by sequence number (the byte value for leaves, or the merge
// order for compound nodes), so that a given FrequencyTable always yields the
// same codes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
