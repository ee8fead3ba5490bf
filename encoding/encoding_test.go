package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shredcol/parquetcol/format"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		enc  format.Encoding
		want bool
	}{
		{format.Plain, true},
		{format.RLE, true},
		{format.RLEDictionary, true},
		{format.PlainDictionary, true},
		{format.DeltaBinaryPacked, true},
		{format.DeltaByteArray, false},
		{format.DeltaLengthByteArray, false},
		{format.ByteStreamSplit, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Supported(tt.enc), "Supported(%s)", tt.enc)
	}
}

func TestRecognized(t *testing.T) {
	tests := []struct {
		enc  format.Encoding
		want bool
	}{
		{format.Plain, true},
		{format.RLE, true},
		{format.RLEDictionary, true},
		{format.PlainDictionary, true},
		{format.DeltaBinaryPacked, true},
		{format.DeltaByteArray, true},
		{format.DeltaLengthByteArray, true},
		{format.ByteStreamSplit, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recognized(tt.enc), "Recognized(%s)", tt.enc)
	}

	assert.True(t, Recognized(format.Plain) && Supported(format.Plain))
	assert.True(t, Recognized(format.ByteStreamSplit) && !Supported(format.ByteStreamSplit))
}
