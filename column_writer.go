package parquetcol

import (
	"bytes"

	"github.com/shredcol/parquetcol/compress"
	"github.com/shredcol/parquetcol/encoding/rle"
	"github.com/shredcol/parquetcol/format"
	"github.com/shredcol/parquetcol/internal/bits"
	"github.com/shredcol/parquetcol/internal/clone"
)

// ColumnChunkWriter encodes one leaf field's already-shredded values into a
// column chunk's on-disk bytes: the inverse of readColumnChunk. It encodes
// the whole column in one pass rather than splitting it into several pages
// the way a streaming writer would, matching this core's "encode/decode a
// whole column chunk at once" contract (see column_reader.go).
type ColumnChunkWriter struct {
	field      *Field
	codec      format.CompressionCodec
	config     *WriterConfig
	compressor compress.Compressor
}

// NewColumnChunkWriter returns a writer for field's leaf column, compressing
// pages with codec.
func NewColumnChunkWriter(field *Field, codec format.CompressionCodec, opts ...WriterOption) *ColumnChunkWriter {
	return &ColumnChunkWriter{field: field, codec: codec, config: NewWriterConfig(opts...)}
}

// writtenPage is one page's header and (possibly compressed) body, plus the
// uncompressed body length, so WriteColumn can accumulate the column
// chunk's total uncompressed/compressed sizes without re-deriving them
// from the combined byte stream.
type writtenPage struct {
	header     []byte
	compressed []byte
	rawLen     int
}

func (w *ColumnChunkWriter) compress(raw []byte) ([]byte, error) {
	if w.codec == format.Uncompressed {
		return raw, nil
	}
	c, err := codecFor(w.codec)
	if err != nil {
		return nil, err
	}
	out, err := w.compressor.EncodeWith(c, nil, raw)
	if err != nil {
		return nil, errorf(IoFailure, "compressing page with codec %s: %w", w.codec, err)
	}
	return out, nil
}

// WriteColumn encodes col, returning the column chunk's bytes (an optional
// leading dictionary page, then a single data page) and the ColumnMetaData
// describing it. DataPageOffset and DictionaryPageOffset are relative to
// the start of the returned bytes; a caller assembling a full file must add
// the chunk's file offset to both.
func (w *ColumnChunkWriter) WriteColumn(col *DataColumn) ([]byte, *format.ColumnMetaData, error) {
	if col.Field != w.field {
		return nil, nil, errorf(SchemaAssignConflict, "column for %v does not match writer's field %v", col.Field.Path(), w.field.Path())
	}

	numValues := len(col.Values)
	switch {
	case col.DefLevels != nil:
		numValues = len(col.DefLevels)
	case col.RepLevels != nil:
		numValues = len(col.RepLevels)
	}

	repBytes, err := encodeLevels(col.RepLevels, w.field.MaxRepetitionLevel())
	if err != nil {
		return nil, nil, errorf(Malformed, "encoding repetition levels for %v: %w", w.field.Path(), err)
	}
	defBytes, err := encodeLevels(col.DefLevels, w.field.MaxDefinitionLevel())
	if err != nil {
		return nil, nil, errorf(Malformed, "encoding definition levels for %v: %w", w.field.Path(), err)
	}

	dict, indices, dictionary := buildDictionary(col.Values)

	var chunk []byte
	var uncompressedTotal, compressedTotal int64
	var dictionaryPageOffset *int64

	if dictionary {
		p, err := w.buildDictionaryPage(dict)
		if err != nil {
			return nil, nil, err
		}
		offset := int64(0)
		dictionaryPageOffset = &offset
		chunk = append(chunk, p.header...)
		chunk = append(chunk, p.compressed...)
		uncompressedTotal += int64(len(p.header) + p.rawLen)
		compressedTotal += int64(len(p.header) + len(p.compressed))
	}

	dataPageOffset := int64(len(chunk))
	stats, err := w.statisticsFor(col)
	if err != nil {
		return nil, nil, err
	}

	var valueEncoding format.Encoding
	var rawLen int
	var dataBytes []byte
	if dictionary {
		bitWidth := rle.MinBitWidth(len(dict))
		idxBytes, err := rle.EncodeIndices(nil, indices, bitWidth)
		if err != nil {
			return nil, nil, errorf(Malformed, "encoding dictionary indices for %v: %w", w.field.Path(), err)
		}
		dataBytes = append(dataBytes, repBytes...)
		dataBytes = append(dataBytes, defBytes...)
		dataBytes = append(dataBytes, idxBytes...)
		rawLen = len(dataBytes)
		valueEncoding = format.RLEDictionary
	} else {
		valueBytes, err := encodePlainValues(nil, w.field.Type, w.field.TypeLength, col.Values)
		if err != nil {
			return nil, nil, errorf(Malformed, "encoding values for %v: %w", w.field.Path(), err)
		}
		dataBytes = append(dataBytes, repBytes...)
		dataBytes = append(dataBytes, defBytes...)
		dataBytes = append(dataBytes, valueBytes...)
		rawLen = len(dataBytes)
		valueEncoding = format.Plain
	}

	compressed, err := w.compress(dataBytes)
	if err != nil {
		return nil, nil, err
	}

	header := &format.DataPageHeader{
		NumValues:               int32(numValues),
		Encoding:                valueEncoding,
		DefinitionLevelEncoding: format.RLE,
		RepetitionLevelEncoding: format.RLE,
	}
	if w.config.DataPageStatistics {
		header.Statistics = stats
	}
	pageHeader := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(rawLen),
		CompressedPageSize:   int32(len(compressed)),
		DataPageHeader:       header,
	}
	headerBytes, err := format.EncodePageHeader(pageHeader)
	if err != nil {
		return nil, nil, errorf(Malformed, "encoding page header for %v: %w", w.field.Path(), err)
	}

	chunk = append(chunk, headerBytes...)
	chunk = append(chunk, compressed...)
	uncompressedTotal += int64(len(headerBytes) + rawLen)
	compressedTotal += int64(len(headerBytes) + len(compressed))

	encodings := []format.Encoding{valueEncoding, format.RLE}
	meta := &format.ColumnMetaData{
		Type:                  w.field.Type,
		Encodings:             encodings,
		PathInSchema:          w.field.Path(),
		Codec:                 w.codec,
		NumValues:             int64(numValues),
		TotalUncompressedSize: uncompressedTotal,
		TotalCompressedSize:   compressedTotal,
		DataPageOffset:        dataPageOffset,
		DictionaryPageOffset:  dictionaryPageOffset,
		Statistics:            stats,
	}
	return chunk, meta, nil
}

func (w *ColumnChunkWriter) buildDictionaryPage(dict []Value) (writtenPage, error) {
	raw, err := encodePlainValues(nil, w.field.Type, w.field.TypeLength, dict)
	if err != nil {
		return writtenPage{}, errorf(Malformed, "encoding dictionary page for %v: %w", w.field.Path(), err)
	}
	compressed, err := w.compress(raw)
	if err != nil {
		return writtenPage{}, err
	}
	header := &format.PageHeader{
		Type:                 format.DictionaryPage,
		UncompressedPageSize: int32(len(raw)),
		CompressedPageSize:   int32(len(compressed)),
		DictionaryPageHeader: &format.DictionaryPageHeader{
			NumValues: int32(len(dict)),
			Encoding:  format.Plain,
		},
	}
	headerBytes, err := format.EncodePageHeader(header)
	if err != nil {
		return writtenPage{}, errorf(Malformed, "encoding dictionary page header for %v: %w", w.field.Path(), err)
	}
	return writtenPage{header: headerBytes, compressed: compressed, rawLen: len(raw)}, nil
}

// buildDictionary reports whether values are worth dictionary-encoding
// (at least half are repeats: no more than len(values)/2 distinct values)
// and, if so, returns the deduplicated dictionary and the index each
// original value maps to. Values are keyed by their String() rendering
// rather than compared directly, since Value holds []byte payloads that
// aren't comparable with ==.
func buildDictionary(values []Value) (dict []Value, indices []int32, ok bool) {
	if len(values) == 0 {
		return nil, nil, false
	}
	seen := make(map[string]int32, len(values))
	indices = make([]int32, len(values))
	for i, v := range values {
		key := v.String()
		idx, exists := seen[key]
		if !exists {
			idx = int32(len(dict))
			seen[key] = idx
			dict = append(dict, v)
		}
		indices[i] = idx
	}
	if len(dict) > len(values)/2 {
		return nil, nil, false
	}
	return dict, indices, true
}

// statsTemplate is the zero-value Statistics every column's per-write
// snapshot is cloned from, so filling in Min/Max/NullCount on one write
// never mutates a value another concurrent write might still be reading.
var statsTemplate = &format.Statistics{}

func (w *ColumnChunkWriter) statisticsFor(col *DataColumn) (*format.Statistics, error) {
	cloned, err := clone.Of(statsTemplate)
	if err != nil {
		return nil, errorf(Malformed, "cloning statistics template: %w", err)
	}

	nullCount := int64(0)
	if col.DefLevels != nil {
		maxDef := w.field.MaxDefinitionLevel()
		for _, d := range col.DefLevels {
			if int(d) != maxDef {
				nullCount++
			}
		}
	}
	cloned.NullCount = &nullCount

	if len(col.Values) == 0 {
		return cloned, nil
	}
	min, max, err := minMaxValue(col.Values)
	if err != nil {
		return nil, err
	}
	minBytes, err := encodePlainValues(nil, w.field.Type, w.field.TypeLength, []Value{min})
	if err != nil {
		return nil, err
	}
	maxBytes, err := encodePlainValues(nil, w.field.Type, w.field.TypeLength, []Value{max})
	if err != nil {
		return nil, err
	}
	cloned.MinValue = minBytes
	cloned.MaxValue = maxBytes
	return cloned, nil
}

// minMaxValue returns the smallest and largest of values, dispatching on
// their shared Kind: numeric and BYTE_ARRAY kinds go to the matching
// internal/bits min/max reduction, while Boolean, Int96 and
// FixedLenByteArray values are compared inline.
func minMaxValue(values []Value) (min, max Value, err error) {
	switch values[0].Kind {
	case Boolean:
		sawFalse, sawTrue := false, false
		for _, v := range values {
			if v.Boolean() {
				sawTrue = true
			} else {
				sawFalse = true
			}
		}
		return BooleanValue(!sawFalse), BooleanValue(sawTrue), nil

	case Int32:
		ints := make([]int32, len(values))
		for i, v := range values {
			ints[i] = v.Int32()
		}
		lo, hi := bits.MinMaxInt32(ints)
		return Int32Value(lo), Int32Value(hi), nil

	case Int64:
		ints := make([]int64, len(values))
		for i, v := range values {
			ints[i] = v.Int64()
		}
		lo, hi := bits.MinMaxInt64(ints)
		return Int64Value(lo), Int64Value(hi), nil

	case Int96:
		lo, hi := values[0].Int96(), values[0].Int96()
		for _, v := range values[1:] {
			i96 := v.Int96()
			if i96.Less(lo) {
				lo = i96
			}
			if hi.Less(i96) {
				hi = i96
			}
		}
		return Int96Value(lo), Int96Value(hi), nil

	case Float:
		floats := make([]float32, len(values))
		for i, v := range values {
			floats[i] = v.Float()
		}
		lo, hi := bits.MinMaxFloat32(floats)
		return FloatValue(lo), FloatValue(hi), nil

	case Double:
		floats := make([]float64, len(values))
		for i, v := range values {
			floats[i] = v.Double()
		}
		lo, hi := bits.MinMaxFloat64(floats)
		return DoubleValue(lo), DoubleValue(hi), nil

	case ByteArray:
		arrays := make([][]byte, len(values))
		for i, v := range values {
			arrays[i] = v.ByteArray()
		}
		lo, hi := bits.MinMaxByteArray(arrays)
		return ByteArrayValue(lo), ByteArrayValue(hi), nil

	case FixedLenByteArray:
		lo, hi := values[0].ByteArray(), values[0].ByteArray()
		for _, v := range values[1:] {
			b := v.ByteArray()
			if bytes.Compare(b, lo) < 0 {
				lo = b
			}
			if bytes.Compare(b, hi) > 0 {
				hi = b
			}
		}
		return FixedLenByteArrayValue(lo), FixedLenByteArrayValue(hi), nil

	default:
		return Value{}, Value{}, errorf(TypeMismatch, "cannot compute min/max for value kind %s", values[0].Kind)
	}
}
