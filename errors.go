package huffman

import (
	"errors"
	"fmt"
)

// ErrMalformedStream is matched by every *MalformedStreamError.
var ErrMalformedStream = errors.New("malformed Huffman bit stream")

// IOError reports a failure to open, read, write, or finalize a stream.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err *IOError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("huffman: %s: %v", err.Op, err.Err)
	}
	return fmt.Sprintf("huffman: %s %q: %v", err.Op, err.Path, err.Err)
}

// Unwrap returns the underlying error.
func (err *IOError) Unwrap() error {
	return err.Err
}

// MalformedReason says why a bit stream could not be decoded.
type MalformedReason byte

const (
	// Truncated means the stream ended before the Sentinel was decoded.
	Truncated MalformedReason = iota

	// BadDigit means the stream held a byte other than '0' or '1'.
	BadDigit
)

var malformedReasonNames = [...]string{
	Truncated: "stream ended before the terminator",
	BadDigit:  "invalid bit digit",
}

// String returns a human-readable description of the reason.
func (reason MalformedReason) String() string {
	if int(reason) < len(malformedReasonNames) {
		return malformedReasonNames[reason]
	}
	return fmt.Sprintf("MalformedReason(%d)", byte(reason))
}

// MalformedStreamError reports a bit stream that the Decoder cannot turn back
// into bytes.
type MalformedStreamError struct {
	Reason MalformedReason

	// Offset is the position of the offending digit, or the stream length
	// for Truncated.
	Offset int64

	// Byte is the offending byte.  Only meaningful for BadDigit.
	Byte byte
}

// Error fulfills the error interface.
func (err *MalformedStreamError) Error() string {
	if err.Reason == BadDigit {
		return fmt.Sprintf("huffman: malformed stream at offset %d: %v %q", err.Offset, err.Reason, err.Byte)
	}
	return fmt.Sprintf("huffman: malformed stream at offset %d: %v", err.Offset, err.Reason)
}

// Is returns true for ErrMalformedStream.
func (err *MalformedStreamError) Is(target error) bool {
	return target == ErrMalformedStream
}

var (
	_ error = (*IOError)(nil)
	_ error = (*MalformedStreamError)(nil)
)
