package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDecoder(t *testing.T, sample string) Decoder {
	t.Helper()
	var d Decoder
	d.Init(BuildTree(profileString(t, sample)))
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t, "AAAB")

	type testRow struct {
		digits string
		sym    Symbol
		ok     bool
	}

	testData := [...]testRow{
		{digits: "", ok: false},
		{digits: "1", ok: false},
		{digits: "111111", ok: false},
		{digits: "1111110", sym: 'A', ok: true},
		{digits: "00111111", sym: 'B', ok: true},
		{digits: "00000010", sym: Sentinel, ok: true},
		{digits: "111111110", sym: 0, ok: true},
		{digits: "11111101", ok: false},
	}
	for _, row := range testData {
		hc, err := ParseCode(row.digits)
		require.NoError(t, err)
		t.Run(hc.String(), func(t *testing.T) {
			sym, ok := d.Decode(hc)
			if ok != row.ok {
				t.Errorf("expected ok=%v, got %v", row.ok, ok)
			}
			if ok && sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t, "")

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tRoot() = 510\n",
		"\tDecode(\"00000000\") = 0\n",
		"\tDecode(\"00000001\") = 1\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if !strings.HasPrefix(actualDump, expectDump) {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump[:len(expectDump)])
	}
	if !strings.HasSuffix(actualDump, "\tDecode(\"11111111\") = 255\n}\n") {
		t.Errorf("wrong output suffix: %q", actualDump[len(actualDump)-40:])
	}
}

func TestDecoder_DecodeStream(t *testing.T) {
	d := makeTestDecoder(t, "AAAB")

	type testRow struct {
		name   string
		input  string
		expect string
	}

	testData := [...]testRow{
		{name: "sentinel-only", input: "00000010", expect: ""},
		{name: "AAAB", input: "1111110111111011111100011111100000010", expect: "AAAB"},
		{name: "unseen", input: "111111110" + "11111110" + "00000010", expect: "\x00\xff"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := d.DecodeStream(&buf, iotest.OneByteReader(strings.NewReader(row.input)))
			require.NoError(t, err)
			assert.Equal(t, row.expect, buf.String())
			assert.Equal(t, int64(len(row.expect)), n)
		})
	}
}

func TestDecoder_DecodeStream_StopsAtSentinel(t *testing.T) {
	d := makeTestDecoder(t, "AAAB")

	r := bytes.NewReader([]byte("1111110" + "00000010" + "trailing junk"))
	var buf bytes.Buffer
	_, err := d.DecodeStream(&buf, r)
	require.NoError(t, err)
	assert.Equal(t, "A", buf.String())
	assert.Equal(t, len("trailing junk"), r.Len())
}

func TestDecoder_DecodeStream_Malformed(t *testing.T) {
	d := makeTestDecoder(t, "AAAB")

	type testRow struct {
		name    string
		input   string
		reason  MalformedReason
		offset  int64
		badByte byte
		partial string
	}

	testData := [...]testRow{
		{name: "empty", input: "", reason: Truncated, offset: 0},
		{name: "no-sentinel", input: "1111110", reason: Truncated, offset: 7, partial: "A"},
		{name: "mid-code", input: "11111100011", reason: Truncated, offset: 11, partial: "A"},
		{name: "bad-digit", input: "11x", reason: BadDigit, offset: 2, badByte: 'x'},
		{name: "newline", input: "1111110\n", reason: BadDigit, offset: 7, badByte: '\n', partial: "A"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := d.DecodeStream(&buf, strings.NewReader(row.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedStream))

			var malformed *MalformedStreamError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, row.reason, malformed.Reason)
			assert.Equal(t, row.offset, malformed.Offset)
			assert.Equal(t, row.badByte, malformed.Byte)
			assert.Equal(t, row.partial, buf.String())
		})
	}
}

func TestDecoder_DecodeStream_ReadError(t *testing.T) {
	d := makeTestDecoder(t, "AAAB")
	boom := errors.New("cable unplugged")

	var buf bytes.Buffer
	_, err := d.DecodeStream(&buf, iotest.ErrReader(boom))
	assert.False(t, errors.Is(err, ErrMalformedStream))
	assert.True(t, errors.Is(err, boom))
}
