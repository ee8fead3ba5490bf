// Package rle implements the hybrid RLE/bit-packed encoding Parquet uses for
// definition levels, repetition levels, and dictionary-indexed data pages.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#run-length-encoding--bit-packing-hybrid-rle--3
//
// A hybrid stream is a sequence of runs. Each run starts with a ULEB128
// header whose low bit tells the run's kind:
//
//   - header&1 == 0: an "rle-run" of header>>1 repetitions of one value,
//     the value itself written as a single fixed-width little-endian int
//     immediately following the header.
//   - header&1 == 1: a "bit-packed-run" of header>>1 groups of 8 values,
//     each value packed into bitWidth bits, LSB-first, immediately
//     following the header.
//
// This core's encoder only ever emits rle-runs (see Encode): the
// bit-packed-run form exists purely so the decoder can read files written
// by other implementations, which may interleave both kinds to keep runs
// short when values don't repeat.
package rle

import (
	"fmt"
	"io"

	"github.com/shredcol/parquetcol/format"
	"github.com/shredcol/parquetcol/internal/bits"
)

// MaxBitWidth is the largest bit width this codec accepts. 32 is excluded
// because a run's values are framed as fixed little-endian ints of at most
// 4 bytes, and a 32-bit-wide bit-packed group would not fit the LSB-first
// packing math without a 5th byte per value; no known writer ever needs
// more than 31 bits for a dictionary index or level.
const MaxBitWidth = 31

// Encoding adapts the hybrid codec to this module's generic Encoding
// interface, for column encodings that need no parameters beyond BitWidth.
type Encoding struct {
	BitWidth int
}

func (e *Encoding) Encoding() format.Encoding { return format.RLE }

func (e *Encoding) String() string { return "RLE" }

// Decode reads maxItems values encoded with the hybrid codec at bitWidth
// from src, appending them to dst. It returns as soon as maxItems values
// have been produced, tolerating a final bit-packed-run in src that is
// padded with extra values beyond maxItems (writers are allowed to pad the
// last group of 8 to a full group).
func Decode(dst []int32, src []byte, bitWidth int, maxItems int) ([]int32, error) {
	if bitWidth < 0 || bitWidth > MaxBitWidth {
		return dst, fmt.Errorf("rle: invalid bit width %d", bitWidth)
	}
	if bitWidth == 0 {
		for i := 0; i < maxItems; i++ {
			dst = append(dst, 0)
		}
		return dst, nil
	}

	valueByteWidth := bits.ByteWidthForBitWidth(bitWidth)
	produced := 0

	for produced < maxItems && len(src) > 0 {
		header, n, err := bits.Uvarint(src)
		if err != nil {
			return dst, fmt.Errorf("rle: reading run header: %w", err)
		}
		src = src[n:]

		if header&1 == 0 {
			count := int(header >> 1)
			if count == 0 {
				// A count-of-zero rle-run terminates decoding outright,
				// consuming no further bytes, not even this run's own
				// value: it guards against a malformed stream cascading.
				return dst, nil
			}
			if len(src) < valueByteWidth {
				// Short final run: stop with whatever has been produced
				// so far instead of failing.
				return dst, nil
			}
			value, err := bits.ReadUintLE(src, valueByteWidth)
			if err != nil {
				return dst, fmt.Errorf("rle: %w", err)
			}
			src = src[valueByteWidth:]

			for i := 0; i < count && produced < maxItems; i++ {
				dst = append(dst, int32(value))
				produced++
			}
		} else {
			groups := int(header >> 1)
			packedLen := groups * bitWidth
			if len(src) < packedLen {
				// The last bit-packed-run of a page is allowed to be
				// short; consume what's there and stop.
				packedLen = len(src)
			}
			packed := src[:packedLen]
			src = src[packedLen:]

			values := unpackBitWidth(packed, bitWidth, groups*8)
			for _, v := range values {
				if produced >= maxItems {
					break
				}
				dst = append(dst, v)
				produced++
			}
		}
	}

	return dst, nil
}

// Encode appends the hybrid encoding of values to dst using a single
// rle-run per maximal run of equal values at the given bitWidth. It never
// emits a bit-packed-run (see the package doc).
func Encode(dst []byte, values []int32, bitWidth int) ([]byte, error) {
	if bitWidth < 0 || bitWidth > MaxBitWidth {
		return dst, fmt.Errorf("rle: invalid bit width %d", bitWidth)
	}
	valueByteWidth := bits.ByteWidthForBitWidth(bitWidth)

	for i := 0; i < len(values); {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}

		dst = bits.AppendUvarint(dst, uint64(j-i)<<1)

		var buf [4]byte
		if _, err := bits.PutUintLE(buf[:], uint32(values[i]), valueByteWidth); err != nil {
			return dst, err
		}
		dst = append(dst, buf[:valueByteWidth]...)

		i = j
	}

	return dst, nil
}

// EncodeWithLength encodes values the same way as Encode, but prefixes the
// result with its own byte length as a 4-byte little-endian integer, the
// framing Parquet uses for a data page's definition/repetition level
// streams so a reader can skip straight to the values that follow.
func EncodeWithLength(dst []byte, values []int32, bitWidth int) ([]byte, error) {
	lengthOffset := len(dst)
	dst = append(dst, 0, 0, 0, 0)

	dst, err := Encode(dst, values, bitWidth)
	if err != nil {
		return dst, err
	}

	n := uint32(len(dst) - lengthOffset - 4)
	if _, err := bits.PutUintLE(dst[lengthOffset:lengthOffset+4], n, 4); err != nil {
		return dst, err
	}
	return dst, nil
}

// DecodeWithLength reads a 4-byte little-endian length prefix from src,
// then decodes maxItems values from the length-delimited hybrid stream that
// follows, returning the decoded values and the number of bytes of src
// consumed (4 + the prefixed length).
func DecodeWithLength(dst []int32, src []byte, bitWidth int, maxItems int) ([]int32, int, error) {
	if len(src) < 4 {
		return dst, 0, fmt.Errorf("rle: length prefix: %w", io.ErrUnexpectedEOF)
	}
	n, err := bits.ReadUintLE(src, 4)
	if err != nil {
		return dst, 0, err
	}
	src = src[4:]
	if uint32(len(src)) < n {
		return dst, 0, fmt.Errorf("rle: length prefix claims %d bytes, have %d: %w", n, len(src), io.ErrUnexpectedEOF)
	}

	dst, err = Decode(dst, src[:n], bitWidth, maxItems)
	return dst, 4 + int(n), err
}

// unpackBitWidth unpacks count values of bitWidth bits each from a
// bit-packed-run's payload, LSB-first.
func unpackBitWidth(packed []byte, bitWidth, count int) []int32 {
	values := make([]int32, 0, count)
	bitMask := uint64(1<<uint(bitWidth)) - 1

	var acc uint64
	var accBits uint

	i := 0
	for len(values) < count {
		for accBits < uint(bitWidth) && i < len(packed) {
			acc |= uint64(packed[i]) << accBits
			accBits += 8
			i++
		}
		if accBits < uint(bitWidth) {
			// Not enough bits left for one more full value: a truncated
			// tail is tolerated, but the partial bits form no value.
			break
		}
		values = append(values, int32(acc&bitMask))
		acc >>= uint(bitWidth)
		accBits -= uint(bitWidth)
	}

	return values
}
