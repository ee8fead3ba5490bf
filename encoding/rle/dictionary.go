package rle

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/shredcol/parquetcol/format"
)

// DictionaryEncoding adapts the hybrid codec to the RLE_DICTIONARY encoding:
// a single leading byte gives the bit width, followed by one unframed
// hybrid stream of dictionary indices (spec §4.B "dictionary indices").
type DictionaryEncoding struct{}

func (e *DictionaryEncoding) Encoding() format.Encoding { return format.RLEDictionary }

func (e *DictionaryEncoding) String() string { return "RLE_DICTIONARY" }

// EncodeIndices appends the RLE_DICTIONARY encoding of indices to dst.
// bitWidth must be large enough to represent every value in indices; 0 is
// only valid when every index is 0 (a dictionary with a single entry).
func EncodeIndices(dst []byte, indices []int32, bitWidth int) ([]byte, error) {
	if bitWidth < 0 || bitWidth > MaxBitWidth {
		return dst, fmt.Errorf("rle: invalid dictionary index bit width %d", bitWidth)
	}
	dst = append(dst, byte(bitWidth))
	return Encode(dst, indices, bitWidth)
}

// DecodeIndices reads maxItems dictionary indices from src. The leading
// byte gives the bit width; a width of 0 means every decoded index is 0,
// the optimization writers use when a dictionary holds a single value.
func DecodeIndices(dst []int32, src []byte, maxItems int) ([]int32, error) {
	if len(src) == 0 {
		if maxItems == 0 {
			return dst, nil
		}
		return dst, fmt.Errorf("rle: dictionary indices: %w", io.ErrUnexpectedEOF)
	}

	bitWidth := int(src[0])
	if bitWidth > 32 {
		return dst, fmt.Errorf("rle: dictionary index bit width %d > 32", bitWidth)
	}
	if bitWidth == 0 {
		for i := 0; i < maxItems; i++ {
			dst = append(dst, 0)
		}
		return dst, nil
	}
	if bitWidth > MaxBitWidth {
		return dst, fmt.Errorf("rle: dictionary index bit width %d unsupported", bitWidth)
	}

	return Decode(dst, src[1:], bitWidth, maxItems)
}

// MinBitWidth returns the number of bits needed to represent every value in
// [0, n), the bit width a dictionary writer picks for a dictionary holding
// n entries.
func MinBitWidth(n int) int {
	return bits.Len32(uint32(n - 1))
}
