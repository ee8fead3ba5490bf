package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32RoundTrip(t *testing.T) {
	tests := [][]int32{
		nil,
		{42},
		{1, 2, 3, 4, 5},
		{100, 99, 98, 1000, -5, -5, -5, 0},
		sequence32(300),
	}

	for _, values := range tests {
		encoded := EncodeInt32(nil, values)
		decoded, err := DecodeInt32(nil, encoded)
		require.NoError(t, err)
		assert.Equal(t, values, decoded)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	tests := [][]int64{
		nil,
		{42},
		{1 << 40, -(1 << 40), 0, 7},
		sequence64(513),
	}

	for _, values := range tests {
		encoded := EncodeInt64(nil, values)
		decoded, err := DecodeInt64(nil, encoded)
		require.NoError(t, err)
		assert.Equal(t, values, decoded)
	}
}

func sequence32(n int) []int32 {
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i * 7 % 101)
	}
	return values
}

func sequence64(n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i) * 1000003
	}
	return values
}
