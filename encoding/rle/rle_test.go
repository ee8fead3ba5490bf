package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		values   []int32
		bitWidth int
	}{
		{name: "empty", values: nil, bitWidth: 3},
		{name: "single run", values: []int32{7, 7, 7, 7, 7}, bitWidth: 3},
		{name: "multiple runs", values: []int32{1, 1, 1, 2, 2, 3, 3, 3, 3}, bitWidth: 2},
		{name: "zero bit width", values: []int32{0, 0, 0}, bitWidth: 0},
		{name: "wide values", values: []int32{100000, 100000, 1}, bitWidth: 24},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded, err := Encode(nil, test.values, test.bitWidth)
			require.NoError(t, err)

			decoded, err := Decode(nil, encoded, test.bitWidth, len(test.values))
			require.NoError(t, err)
			assert.Equal(t, test.values, decoded)
		})
	}
}

func TestEncodeWithLengthRoundTrip(t *testing.T) {
	values := []int32{0, 0, 1, 1, 1, 0}

	encoded, err := EncodeWithLength(nil, values, 1)
	require.NoError(t, err)

	decoded, n, err := DecodeWithLength(nil, encoded, 1, len(values))
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, values, decoded)
}

func TestDecodeBitPackedRun(t *testing.T) {
	// A bit-packed-run of one group of 8 values packed at 3 bits each,
	// as produced by a third-party writer (this codec's own encoder never
	// emits this form, but must still read it back).
	values := []int32{0, 1, 2, 3, 4, 5, 6, 7}
	packed := packBitWidthForTest(values, 3)

	header := AppendUvarintForTest((1 << 1) | 1)
	src := append(header, packed...)

	decoded, err := Decode(nil, src, 3, len(values))
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecodePaddedBitPackedRunAtEndOfPage(t *testing.T) {
	// Writers may pad the final bit-packed group beyond the page's declared
	// value count; the decoder must stop at maxItems, not at end of input.
	values := []int32{1, 1, 1, 0, 0, 0, 0, 0}
	packed := packBitWidthForTest(values, 1)
	header := AppendUvarintForTest((1 << 1) | 1)
	src := append(header, packed...)

	decoded, err := Decode(nil, src, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 1, 1}, decoded)
}

func TestEncodeInvalidBitWidth(t *testing.T) {
	_, err := Encode(nil, []int32{1}, 32)
	require.Error(t, err)
}

func TestDictionaryIndicesRoundTrip(t *testing.T) {
	indices := []int32{0, 0, 1, 2, 2, 2}
	bitWidth := MinBitWidth(3)

	encoded, err := EncodeIndices(nil, indices, bitWidth)
	require.NoError(t, err)

	decoded, err := DecodeIndices(nil, encoded, len(indices))
	require.NoError(t, err)
	assert.Equal(t, indices, decoded)
}

func TestDictionaryIndicesSingleValueZeroWidth(t *testing.T) {
	encoded, err := EncodeIndices(nil, []int32{0, 0, 0, 0}, 0)
	require.NoError(t, err)

	decoded, err := DecodeIndices(nil, encoded, 4)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 0, 0}, decoded)
}

// packBitWidthForTest packs values LSB-first at bitWidth bits each,
// mirroring the Parquet bit-packed-run layout, for use by tests that
// exercise the decoder's handling of input this codec never encodes.
func packBitWidthForTest(values []int32, bitWidth int) []byte {
	var out []byte
	var acc uint64
	var accBits uint

	for _, v := range values {
		acc |= uint64(v) << accBits
		accBits += uint(bitWidth)
		for accBits >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			accBits -= 8
		}
	}
	if accBits > 0 {
		out = append(out, byte(acc))
	}
	return out
}

func AppendUvarintForTest(u uint64) []byte {
	var out []byte
	for u >= 0x80 {
		out = append(out, byte(u)|0x80)
		u >>= 7
	}
	return append(out, byte(u))
}
