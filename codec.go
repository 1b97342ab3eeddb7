package huffman

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Option configures a Codec.
type Option func(c *Codec)

// WithLogger sets the logger used for debug output.  The default is the
// logrus standard logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// Codec bundles everything derived from one FrequencyTable: the Tree, the
// CodeTable, and an Encoder and Decoder built from them.  A Codec is never
// modified after construction, so it may be shared between goroutines.
type Codec struct {
	freqs   FrequencyTable
	tree    *Tree
	table   CodeTable
	encoder Encoder
	decoder Decoder
	logger  log.FieldLogger
}

// New builds a Codec from a FrequencyTable.  Zero entries are smoothed first.
func New(freqs FrequencyTable, opts ...Option) *Codec {
	c := &Codec{logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}

	freqs.Smooth()
	c.freqs = freqs
	c.tree = BuildTree(freqs)
	c.table = BuildCodeTable(c.tree)
	c.encoder.Init(&c.table)
	c.decoder.Init(c.tree)

	c.logger.WithFields(log.Fields{
		"total":   freqs.Total(),
		"merges":  numMerges,
		"minSize": c.encoder.MinSize(),
		"maxSize": c.encoder.MaxSize(),
	}).Debug("built Huffman code")
	return c
}

// NewFromReader profiles r and returns New of the result.
func NewFromReader(r io.Reader, opts ...Option) (*Codec, error) {
	freqs, err := Profile(r)
	if err != nil {
		return nil, err
	}
	return New(freqs, opts...), nil
}

// NewFromFile profiles the named file and returns New of the result.
func NewFromFile(path string, opts ...Option) (*Codec, error) {
	freqs, err := ProfileFile(path)
	if err != nil {
		return nil, err
	}
	return New(freqs, opts...), nil
}

// Frequencies returns the smoothed FrequencyTable.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freqs
}

// Tree returns the Huffman tree.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Table returns the CodeTable.
func (c *Codec) Table() CodeTable {
	return c.table
}

// Encoder returns the Encoder.
func (c *Codec) Encoder() Encoder {
	return c.encoder
}

// Decoder returns the Decoder.
func (c *Codec) Decoder() Decoder {
	return c.decoder
}

// Encode writes the bit string for r to w.  See Encoder.EncodeStream.
func (c *Codec) Encode(w io.Writer, r io.Reader) (int64, error) {
	n, err := c.encoder.EncodeStream(w, r)
	if err != nil {
		c.logger.WithError(err).Debug("encode failed")
		return n, err
	}
	c.logger.WithField("digits", n).Debug("encoded")
	return n, nil
}

// Decode writes the bytes for the bit string r to w.  See
// Decoder.DecodeStream.
func (c *Codec) Decode(w io.Writer, r io.Reader) (int64, error) {
	n, err := c.decoder.DecodeStream(w, r)
	if err != nil {
		c.logger.WithError(err).Debug("decode failed")
		return n, err
	}
	c.logger.WithField("bytes", n).Debug("decoded")
	return n, nil
}

// EncodeBytes returns the bit string for data.
func (c *Codec) EncodeBytes(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data)*int(c.encoder.MaxSize()) + int(c.table[Sentinel].Size))
	if _, err := c.Encode(&buf, bytes.NewReader(data)); err != nil {
		panic(fmt.Errorf("BUG: in-memory encode failed: %w", err))
	}
	return buf.Bytes()
}

// DecodeBytes returns the bytes for the bit string digits.
func (c *Codec) DecodeBytes(digits []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.Decode(&buf, bytes.NewReader(digits)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeFile encodes the file inPath into outPath.  outPath is replaced only
// if encoding succeeds.
func (c *Codec) EncodeFile(inPath, outPath string) error {
	return c.transformFile(inPath, outPath, c.Encode)
}

// DecodeFile decodes the file inPath into outPath.  outPath is replaced only
// if decoding succeeds.
func (c *Codec) DecodeFile(inPath, outPath string) error {
	return c.transformFile(inPath, outPath, c.Decode)
}

// PrintCodes writes one line per Symbol, in ascending order, listing its
// frequency and code.
func (c *Codec) PrintCodes(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for symbol := 0; symbol < NumSymbols; symbol++ {
		fmt.Fprintf(&buf, "char: %d, freq: %d, code: %s\n", symbol, c.freqs[symbol], c.table[symbol].Digits())
	}
	return buf.WriteTo(w)
}

func (c *Codec) transformFile(inPath, outPath string, fn func(io.Writer, io.Reader) (int64, error)) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return &IOError{Op: "open", Path: inPath, Err: err}
	}
	defer in.Close()

	tmpPath := outPath + ".tmp-" + uuid.NewString()
	out, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return &IOError{Op: "create", Path: tmpPath, Err: err}
	}

	needClose := true
	defer func() {
		if needClose {
			_ = out.Close()
		}
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = fn(out, in); err != nil {
		return withPath(err, inPath, tmpPath)
	}

	needClose = false
	if err = out.Close(); err != nil {
		return &IOError{Op: "close", Path: tmpPath, Err: err}
	}
	if err = os.Rename(tmpPath, outPath); err != nil {
		return &IOError{Op: "rename", Path: outPath, Err: err}
	}

	c.logger.WithFields(log.Fields{"in": inPath, "out": outPath}).Debug("wrote file")
	return nil
}

// withPath fills in the Path of an *IOError that does not yet carry one:
// readPath for reads, writePath for everything else.
func withPath(err error, readPath, writePath string) error {
	ioErr, ok := err.(*IOError)
	if !ok || ioErr.Path != "" {
		return err
	}
	copied := *ioErr
	copied.Path = writePath
	if copied.Op == "read" {
		copied.Path = readPath
	}
	return &copied
}
