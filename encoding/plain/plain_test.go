package plain

import (
	"testing"

	"github.com/shredcol/parquetcol/deprecated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32RoundTrip(t *testing.T) {
	src := []int32{-1, 0, 1, 1 << 20, -(1 << 20)}
	encoded := EncodeInt32(nil, src)
	decoded, err := DecodeInt32(nil, encoded)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestInt64RoundTrip(t *testing.T) {
	src := []int64{-1, 0, 1, 1 << 40}
	encoded := EncodeInt64(nil, src)
	decoded, err := DecodeInt64(nil, encoded)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestInt96RoundTrip(t *testing.T) {
	src := []deprecated.Int96{{1, 2, 3}, {0, 0, 0}}
	encoded := EncodeInt96(nil, src)
	decoded, err := DecodeInt96(nil, encoded)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestFloatDoubleRoundTrip(t *testing.T) {
	floats := []float32{0, 1.5, -2.25}
	encodedFloats := EncodeFloat(nil, floats)
	decodedFloats, err := DecodeFloat(nil, encodedFloats)
	require.NoError(t, err)
	assert.Equal(t, floats, decodedFloats)

	doubles := []float64{0, 1.5, -2.25}
	encodedDoubles := EncodeDouble(nil, doubles)
	decodedDoubles, err := DecodeDouble(nil, encodedDoubles)
	require.NoError(t, err)
	assert.Equal(t, doubles, decodedDoubles)
}

func TestBooleanRoundTrip(t *testing.T) {
	src := []bool{true, false, false, true}
	encoded := EncodeBoolean(nil, src)
	decoded, err := DecodeBoolean(nil, encoded)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestByteArrayRoundTrip(t *testing.T) {
	src := [][]byte{[]byte("hello"), []byte(""), []byte("world")}
	encoded, err := EncodeByteArray(nil, src)
	require.NoError(t, err)

	decoded, err := DecodeByteArray(nil, encoded)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestFixedLenByteArrayRoundTrip(t *testing.T) {
	src := append(append([]byte{}, "abcd"...), "efgh"...)
	encoded := EncodeFixedLenByteArray(nil, src)

	decoded, err := DecodeFixedLenByteArray(nil, encoded, 4)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestDecodeByteArrayTruncated(t *testing.T) {
	_, err := DecodeByteArray(nil, []byte{5, 0, 0, 0, 'h', 'i'})
	require.Error(t, err)
}
