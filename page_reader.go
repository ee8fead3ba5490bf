package parquetcol

import (
	"math/bits"

	"github.com/shredcol/parquetcol/deprecated"
	"github.com/shredcol/parquetcol/encoding/delta"
	"github.com/shredcol/parquetcol/encoding/plain"
	"github.com/shredcol/parquetcol/encoding/rle"
	"github.com/shredcol/parquetcol/format"
)

// page is one decoded data page: a run of values plus, if the owning field
// is optional/repeated, the definition/repetition levels for each slot
// (including the ones definitionLevel says are null and therefore carry no
// value).
type page struct {
	values    []Value
	defLevels []byte
	repLevels []byte
	numRows   int
}


// decodeLevels decodes numValues repetition or definition levels encoded
// with enc from the front of data, returning the level slice (narrowed to
// byte, since no field in this core nests deeper than 255 levels) and the
// number of input bytes consumed. v1 data pages length-prefix their level
// streams with a 4-byte little-endian count (RLE "length" framing);
// DATA_PAGE_V2 instead gives an explicit byte length in its header and the
// stream itself is unframed, handled by the caller passing consumeAll.
func decodeLevels(enc format.Encoding, data []byte, maxLevel, numValues int, consumeAll bool) ([]byte, int, error) {
	if maxLevel == 0 {
		return nil, 0, nil
	}
	if enc != format.RLE {
		return nil, 0, errorf(EncodingUnsupported, "level encoding %s is not supported", enc)
	}
	width := bits.Len8(uint8(maxLevel))

	var raw []int32
	var n int
	var err error
	if consumeAll {
		raw, err = rle.Decode(nil, data, width, numValues)
		n = len(data)
	} else {
		raw, n, err = rle.DecodeWithLength(nil, data, width, numValues)
	}
	if err != nil {
		return nil, 0, errorf(Malformed, "decoding levels: %w", err)
	}
	levels := make([]byte, len(raw))
	for i, v := range raw {
		levels[i] = byte(v)
	}
	return levels, n, nil
}

// decodeTypedValues decodes numValues physical-type values encoded with enc
// from data into Values of the given kind, consulting dict for the
// RLE_DICTIONARY/PLAIN_DICTIONARY index encodings.
func decodeTypedValues(typ format.Type, typeLength int, enc format.Encoding, data []byte, numValues int, dict []Value) ([]Value, error) {
	switch enc {
	case format.Plain:
		return decodePlainValues(typ, typeLength, data, numValues)

	case format.RLEDictionary, format.PlainDictionary:
		indices, err := rle.DecodeIndices(nil, data, numValues)
		if err != nil {
			return nil, errorf(Malformed, "decoding dictionary indices: %w", err)
		}
		values := make([]Value, len(indices))
		for i, idx := range indices {
			if int(idx) < 0 || int(idx) >= len(dict) {
				return nil, errorf(Malformed, "dictionary index %d out of range [0,%d)", idx, len(dict))
			}
			values[i] = dict[idx]
		}
		return values, nil

	case format.DeltaBinaryPacked:
		return decodeDeltaValues(typ, data, numValues)

	default:
		return nil, errorf(EncodingUnsupported, "value encoding %s is not supported", enc)
	}
}

func decodePlainValues(typ format.Type, typeLength int, data []byte, numValues int) ([]Value, error) {
	switch typ {
	case format.Boolean:
		bools, err := plain.DecodeBoolean(make([]bool, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN boolean values: %w", err)
		}
		return mapValues(bools, func(b bool) Value { return BooleanValue(b) }), nil

	case format.Int32:
		ints, err := plain.DecodeInt32(make([]int32, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN int32 values: %w", err)
		}
		return mapValues(ints, func(v int32) Value { return Int32Value(v) }), nil

	case format.Int64:
		ints, err := plain.DecodeInt64(make([]int64, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN int64 values: %w", err)
		}
		return mapValues(ints, func(v int64) Value { return Int64Value(v) }), nil

	case format.Int96:
		ints, err := plain.DecodeInt96(make([]deprecated.Int96, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN int96 values: %w", err)
		}
		return mapValues(ints, func(v deprecated.Int96) Value { return Int96Value(v) }), nil

	case format.Float:
		floats, err := plain.DecodeFloat(make([]float32, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN float values: %w", err)
		}
		return mapValues(floats, func(v float32) Value { return FloatValue(v) }), nil

	case format.Double:
		floats, err := plain.DecodeDouble(make([]float64, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN double values: %w", err)
		}
		return mapValues(floats, func(v float64) Value { return DoubleValue(v) }), nil

	case format.ByteArray:
		arrays, err := plain.DecodeByteArray(make([][]byte, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN byte array values: %w", err)
		}
		return mapValues(arrays, func(b []byte) Value { return ByteArrayValue(b) }), nil

	case format.FixedLenByteArray:
		raw, err := plain.DecodeFixedLenByteArray(nil, data, typeLength)
		if err != nil {
			return nil, errorf(Malformed, "decoding PLAIN fixed-len byte array values: %w", err)
		}
		values := make([]Value, len(raw)/typeLength)
		for i := range values {
			values[i] = FixedLenByteArrayValue(raw[i*typeLength : (i+1)*typeLength])
		}
		return values, nil

	default:
		return nil, errorf(Malformed, "unknown physical type %s", typ)
	}
}

func decodeDeltaValues(typ format.Type, data []byte, numValues int) ([]Value, error) {
	switch typ {
	case format.Int32:
		ints, err := delta.DecodeInt32(make([]int32, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding DELTA_BINARY_PACKED int32 values: %w", err)
		}
		return mapValues(ints, func(v int32) Value { return Int32Value(v) }), nil

	case format.Int64:
		ints, err := delta.DecodeInt64(make([]int64, 0, numValues), data)
		if err != nil {
			return nil, errorf(Malformed, "decoding DELTA_BINARY_PACKED int64 values: %w", err)
		}
		return mapValues(ints, func(v int64) Value { return Int64Value(v) }), nil

	default:
		return nil, errorf(EncodingUnsupported, "DELTA_BINARY_PACKED is not supported for physical type %s", typ)
	}
}

func mapValues[T any](src []T, f func(T) Value) []Value {
	dst := make([]Value, len(src))
	for i, v := range src {
		dst[i] = f(v)
	}
	return dst
}

// decodeDataPageV1 decodes a DATA_PAGE, whose repetition levels,
// definition levels and values are each length-prefixed (for the levels)
// or simply fill the remainder of the buffer (for the values), laid out
// back to back in that order.
func decodeDataPageV1(field *Field, header *format.DataPageHeader, data []byte, dict []Value) (page, error) {
	numValues := int(header.NumValues)
	offset := 0

	repLevels, n, err := decodeLevels(header.RepetitionLevelEncoding, data[offset:], field.MaxRepetitionLevel(), numValues, false)
	if err != nil {
		return page{}, err
	}
	offset += n

	defLevels, n, err := decodeLevels(header.DefinitionLevelEncoding, data[offset:], field.MaxDefinitionLevel(), numValues, false)
	if err != nil {
		return page{}, err
	}
	offset += n

	numDefined := numValues
	if defLevels != nil {
		numDefined = 0
		for _, l := range defLevels {
			if int(l) == field.MaxDefinitionLevel() {
				numDefined++
			}
		}
	}

	values, err := decodeTypedValues(field.Type, field.TypeLength, header.Encoding, data[offset:], numDefined, dict)
	if err != nil {
		return page{}, err
	}

	numRows := numValues
	switch {
	case repLevels != nil:
		numRows = 0
		for _, r := range repLevels {
			if r == 0 {
				numRows++
			}
		}
	case defLevels != nil:
		numRows = len(defLevels)
	}
	return page{values: values, defLevels: defLevels, repLevels: repLevels, numRows: numRows}, nil
}

// decodeDataPageV2 decodes a DATA_PAGE_V2, whose level streams are always
// RLE with explicit byte lengths in the header (never length-prefixed
// themselves) and whose values may be independently compressed from the
// levels (IsCompressed applies only to the values region).
func decodeDataPageV2(field *Field, header *format.DataPageHeaderV2, data []byte, dict []Value) (page, error) {
	numValues := int(header.NumValues)
	repLen := int(header.RepetitionLevelsByteLength)
	defLen := int(header.DefinitionLevelsByteLength)
	if repLen+defLen > len(data) {
		return page{}, errorf(Malformed, "data page v2 level lengths exceed page size")
	}

	repLevels, _, err := decodeLevels(format.RLE, data[:repLen], field.MaxRepetitionLevel(), numValues, true)
	if err != nil {
		return page{}, err
	}
	defLevels, _, err := decodeLevels(format.RLE, data[repLen:repLen+defLen], field.MaxDefinitionLevel(), numValues, true)
	if err != nil {
		return page{}, err
	}

	numDefined := int(header.NumValues - header.NumNulls)

	values, err := decodeTypedValues(field.Type, field.TypeLength, header.Encoding, data[repLen+defLen:], numDefined, dict)
	if err != nil {
		return page{}, err
	}
	return page{values: values, defLevels: defLevels, repLevels: repLevels, numRows: int(header.NumRows)}, nil
}

// readDictionaryPage decodes a DICTIONARY_PAGE's flat, always-PLAIN-
// encoded value list.
func readDictionaryPage(field *Field, header *format.DictionaryPageHeader, data []byte) ([]Value, error) {
	if header.Encoding != format.Plain && header.Encoding != format.PlainDictionary {
		return nil, errorf(EncodingUnsupported, "dictionary page encoding %s is not supported", header.Encoding)
	}
	return decodePlainValues(field.Type, field.TypeLength, data, int(header.NumValues))
}
