package huffman

import (
	"io"
	"os"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// Profile reads r to exhaustion, counting each byte, and returns the smoothed
// FrequencyTable.
func Profile(r io.Reader) (FrequencyTable, error) {
	var freqs FrequencyTable
	if err := freqs.Count(r); err != nil {
		return FrequencyTable{}, err
	}
	freqs.Smooth()
	return freqs, nil
}

// ProfileFile opens the named file and returns Profile of its contents.  The
// file is always closed before returning.
func ProfileFile(path string) (freqs FrequencyTable, err error) {
	f, err := os.Open(path)
	if err != nil {
		return FrequencyTable{}, &IOError{Op: "open", Path: path, Err: err}
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			freqs = FrequencyTable{}
			err = &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	freqs, err = Profile(f)
	return freqs, withPath(err, path, path)
}

// Count reads r to exhaustion and adds each byte seen to the table.  It does
// not smooth.
func (freqs *FrequencyTable) Count(r io.Reader) error {
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		for _, ch := range buf[:n] {
			freqs[ch] = saturatingAdd(freqs[ch], 1)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &IOError{Op: "read", Err: err}
		}
	}
}

// Smooth raises every zero entry to 1, so that every Symbol remains codeable
// even if it never appeared in the sample.
func (freqs *FrequencyTable) Smooth() {
	for symbol := range freqs {
		if freqs[symbol] == 0 {
			freqs[symbol] = 1
		}
	}
}

// Total returns the saturating sum of all entries.
func (freqs *FrequencyTable) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		total = saturatingAdd(total, freq)
	}
	return total
}
