// Package plain implements the PLAIN parquet encoding: every physical type
// is written back to back with no framing beyond what the type itself
// needs (a 4-byte length prefix for BYTE_ARRAY, none at all for the fixed
// width types).
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#plain-plain--0
package plain

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/shredcol/parquetcol/deprecated"
	"github.com/shredcol/parquetcol/format"
)

// ByteArrayLengthSize is the width, in bytes, of the length prefix written
// before each BYTE_ARRAY value.
const ByteArrayLengthSize = 4

// MaxByteArrayLength is the largest length a BYTE_ARRAY length prefix can
// represent.
const MaxByteArrayLength = math.MaxInt32

// Encoding identifies the PLAIN encoding for callers that select a codec by
// its format.Encoding value rather than calling this package's functions
// directly.
type Encoding struct{}

func (e *Encoding) Encoding() format.Encoding { return format.Plain }

func (e *Encoding) String() string { return "PLAIN" }

func EncodeBoolean(dst []byte, src []bool) []byte {
	for _, v := range src {
		var b byte
		if v {
			b = 1
		}
		dst = append(dst, b)
	}
	return dst
}

func DecodeBoolean(dst []bool, src []byte) ([]bool, error) {
	for _, b := range src {
		dst = append(dst, b != 0)
	}
	return dst, nil
}

func EncodeInt32(dst []byte, src []int32) []byte {
	var buf [4]byte
	for _, v := range src {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}

func DecodeInt32(dst []int32, src []byte) ([]int32, error) {
	if len(src)%4 != 0 {
		return dst, errInvalidLength("INT32", len(src), 4)
	}
	for i := 0; i+4 <= len(src); i += 4 {
		dst = append(dst, int32(binary.LittleEndian.Uint32(src[i:])))
	}
	return dst, nil
}

func EncodeInt64(dst []byte, src []int64) []byte {
	var buf [8]byte
	for _, v := range src {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}

func DecodeInt64(dst []int64, src []byte) ([]int64, error) {
	if len(src)%8 != 0 {
		return dst, errInvalidLength("INT64", len(src), 8)
	}
	for i := 0; i+8 <= len(src); i += 8 {
		dst = append(dst, int64(binary.LittleEndian.Uint64(src[i:])))
	}
	return dst, nil
}

func EncodeInt96(dst []byte, src []deprecated.Int96) []byte {
	var buf [12]byte
	for _, v := range src {
		binary.LittleEndian.PutUint32(buf[0:4], v[0])
		binary.LittleEndian.PutUint32(buf[4:8], v[1])
		binary.LittleEndian.PutUint32(buf[8:12], v[2])
		dst = append(dst, buf[:]...)
	}
	return dst
}

func DecodeInt96(dst []deprecated.Int96, src []byte) ([]deprecated.Int96, error) {
	if len(src)%12 != 0 {
		return dst, errInvalidLength("INT96", len(src), 12)
	}
	for i := 0; i+12 <= len(src); i += 12 {
		v := deprecated.Int96{
			binary.LittleEndian.Uint32(src[i : i+4]),
			binary.LittleEndian.Uint32(src[i+4 : i+8]),
			binary.LittleEndian.Uint32(src[i+8 : i+12]),
		}
		dst = append(dst, v)
	}
	return dst, nil
}

func EncodeFloat(dst []byte, src []float32) []byte {
	var buf [4]byte
	for _, v := range src {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}

func DecodeFloat(dst []float32, src []byte) ([]float32, error) {
	if len(src)%4 != 0 {
		return dst, errInvalidLength("FLOAT", len(src), 4)
	}
	for i := 0; i+4 <= len(src); i += 4 {
		dst = append(dst, math.Float32frombits(binary.LittleEndian.Uint32(src[i:])))
	}
	return dst, nil
}

func EncodeDouble(dst []byte, src []float64) []byte {
	var buf [8]byte
	for _, v := range src {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		dst = append(dst, buf[:]...)
	}
	return dst
}

func DecodeDouble(dst []float64, src []byte) ([]float64, error) {
	if len(src)%8 != 0 {
		return dst, errInvalidLength("DOUBLE", len(src), 8)
	}
	for i := 0; i+8 <= len(src); i += 8 {
		dst = append(dst, math.Float64frombits(binary.LittleEndian.Uint64(src[i:])))
	}
	return dst, nil
}

// EncodeByteArray appends each of src's values to dst, each one prefixed by
// its own 4-byte little-endian length.
func EncodeByteArray(dst []byte, src [][]byte) ([]byte, error) {
	var buf [4]byte
	for _, v := range src {
		if len(v) > MaxByteArrayLength {
			return dst, fmt.Errorf("plain: byte array of length %d exceeds the maximum of %d", len(v), MaxByteArrayLength)
		}
		binary.LittleEndian.PutUint32(buf[:], uint32(len(v)))
		dst = append(dst, buf[:]...)
		dst = append(dst, v...)
	}
	return dst, nil
}

// DecodeByteArray reads length-prefixed values from src until it is
// exhausted, appending each one (still referencing src's backing array) to
// dst.
func DecodeByteArray(dst [][]byte, src []byte) ([][]byte, error) {
	for len(src) > 0 {
		if len(src) < ByteArrayLengthSize {
			return dst, fmt.Errorf("plain: byte array length prefix: %w", io.ErrUnexpectedEOF)
		}
		n := int(binary.LittleEndian.Uint32(src))
		src = src[ByteArrayLengthSize:]
		if n < 0 || n > len(src) {
			return dst, fmt.Errorf("plain: byte array of length %d exceeds remaining input of %d bytes", n, len(src))
		}
		dst = append(dst, src[:n])
		src = src[n:]
	}
	return dst, nil
}

// EncodeFixedLenByteArray appends src to dst unchanged: FIXED_LEN_BYTE_ARRAY
// values carry no length prefix, their size being fixed by the schema.
func EncodeFixedLenByteArray(dst, src []byte) []byte {
	return append(dst, src...)
}

// DecodeFixedLenByteArray validates that src holds a whole number of
// size-byte values and appends it to dst unchanged.
func DecodeFixedLenByteArray(dst, src []byte, size int) ([]byte, error) {
	if size <= 0 {
		return dst, fmt.Errorf("plain: invalid fixed length byte array size %d", size)
	}
	if len(src)%size != 0 {
		return dst, errInvalidLength(fmt.Sprintf("FIXED_LEN_BYTE_ARRAY(%d)", size), len(src), size)
	}
	return append(dst, src...), nil
}

func errInvalidLength(typ string, length, multipleOf int) error {
	return fmt.Errorf("plain: %s input of %d bytes is not a multiple of %d", typ, length, multipleOf)
}
