package parquetcol

import (
	"math/bits"

	"github.com/shredcol/parquetcol/deprecated"
	"github.com/shredcol/parquetcol/encoding/plain"
	"github.com/shredcol/parquetcol/encoding/rle"
	"github.com/shredcol/parquetcol/format"
)

// encodeLevels is the write-side inverse of decodeLevels: it RLE-encodes
// levels at the minimum bit width maxLevel needs and length-prefixes the
// result, the framing a DATA_PAGE's level streams use.
func encodeLevels(levels []byte, maxLevel int) ([]byte, error) {
	if maxLevel == 0 {
		return nil, nil
	}
	width := bits.Len8(uint8(maxLevel))
	ints := make([]int32, len(levels))
	for i, l := range levels {
		ints[i] = int32(l)
	}
	return rle.EncodeWithLength(nil, ints, width)
}

// encodePlainValues appends the PLAIN encoding of values (already filtered
// to only the slots a leaf's definition level marks present) to dst.
func encodePlainValues(dst []byte, typ format.Type, typeLength int, values []Value) ([]byte, error) {
	switch typ {
	case format.Boolean:
		bools := make([]bool, len(values))
		for i, v := range values {
			bools[i] = v.Boolean()
		}
		return plain.EncodeBoolean(dst, bools), nil

	case format.Int32:
		ints := make([]int32, len(values))
		for i, v := range values {
			ints[i] = v.Int32()
		}
		return plain.EncodeInt32(dst, ints), nil

	case format.Int64:
		ints := make([]int64, len(values))
		for i, v := range values {
			ints[i] = v.Int64()
		}
		return plain.EncodeInt64(dst, ints), nil

	case format.Int96:
		i96s := make([]deprecated.Int96, len(values))
		for i, v := range values {
			i96s[i] = v.Int96()
		}
		return plain.EncodeInt96(dst, i96s), nil

	case format.Float:
		floats := make([]float32, len(values))
		for i, v := range values {
			floats[i] = v.Float()
		}
		return plain.EncodeFloat(dst, floats), nil

	case format.Double:
		floats := make([]float64, len(values))
		for i, v := range values {
			floats[i] = v.Double()
		}
		return plain.EncodeDouble(dst, floats), nil

	case format.ByteArray:
		arrays := make([][]byte, len(values))
		for i, v := range values {
			arrays[i] = v.ByteArray()
		}
		return plain.EncodeByteArray(dst, arrays)

	case format.FixedLenByteArray:
		for _, v := range values {
			dst = plain.EncodeFixedLenByteArray(dst, v.ByteArray())
		}
		return dst, nil

	default:
		return nil, errorf(Malformed, "unknown physical type %s", typ)
	}
}
