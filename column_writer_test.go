package parquetcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shredcol/parquetcol/format"
)

func testIDColumn() (*Field, *DataColumn) {
	root := StructField("row", Required, DataField("id", Required, format.Int32))
	NewSchema("test", root)
	id := root.Fields[0]

	return id, &DataColumn{
		Field:   id,
		Values:  []Value{Int32Value(3), Int32Value(1), Int32Value(2), Int32Value(1)},
		NumRows: 4,
	}
}

func TestColumnChunkWriterRoundTrip(t *testing.T) {
	id, col := testIDColumn()

	w := NewColumnChunkWriter(id, format.Uncompressed)
	chunk, meta, err := w.WriteColumn(col)
	require.NoError(t, err)
	require.NotEmpty(t, chunk)

	assert.Equal(t, format.Int32, meta.Type)
	assert.Equal(t, int64(4), meta.NumValues)
	assert.Equal(t, format.Uncompressed, meta.Codec)
	assert.Equal(t, int64(0), meta.DataPageOffset)
	assert.Nil(t, meta.DictionaryPageOffset)
	require.NotNil(t, meta.Statistics)
	assert.Equal(t, int64(0), *meta.Statistics.NullCount)

	min := int32FromPlain(t, meta.Statistics.MinValue)
	max := int32FromPlain(t, meta.Statistics.MaxValue)
	assert.Equal(t, int32(1), min)
	assert.Equal(t, int32(3), max)
}

func TestColumnChunkWriterDictionary(t *testing.T) {
	id := DataField("id", Required, format.Int32)
	root := StructField("row", Required, id)
	NewSchema("test", root)
	id = root.Fields[0]

	values := make([]Value, 100)
	for i := range values {
		values[i] = Int32Value(int32(i % 3))
	}
	col := &DataColumn{Field: id, Values: values, NumRows: len(values)}

	w := NewColumnChunkWriter(id, format.Uncompressed)
	chunk, meta, err := w.WriteColumn(col)
	require.NoError(t, err)
	require.NotEmpty(t, chunk)

	require.NotNil(t, meta.DictionaryPageOffset)
	assert.Equal(t, int64(0), *meta.DictionaryPageOffset)
	assert.Contains(t, meta.Encodings, format.RLEDictionary)
}

func TestColumnChunkWriterOptionalNulls(t *testing.T) {
	name := DataField("name", Optional, format.ByteArray)
	root := StructField("row", Required, name)
	NewSchema("test", root)
	name = root.Fields[0]

	col := &DataColumn{
		Field:     name,
		Values:    []Value{ByteArrayValue([]byte("a")), ByteArrayValue([]byte("b"))},
		DefLevels: []byte{1, 0, 1},
		NumRows:   3,
	}

	w := NewColumnChunkWriter(name, format.Uncompressed, DataPageStatistics(true))
	_, meta, err := w.WriteColumn(col)
	require.NoError(t, err)
	require.NotNil(t, meta.Statistics.NullCount)
	assert.Equal(t, int64(1), *meta.Statistics.NullCount)
}

func int32FromPlain(t *testing.T, b []byte) int32 {
	t.Helper()
	require.Len(t, b, 4)
	return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}
