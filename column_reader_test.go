package parquetcol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shredcol/parquetcol/format"
)

// roundTrip writes col with a ColumnChunkWriter and reads it back through
// readColumnChunk, the same pair of entry points spec.md's component D/F
// split describes as inverses of each other.
func roundTrip(t *testing.T, field *Field, col *DataColumn, opts ...WriterOption) *DataColumn {
	t.Helper()
	w := NewColumnChunkWriter(field, format.Uncompressed, opts...)
	chunk, meta, err := w.WriteColumn(col)
	require.NoError(t, err)

	got, err := readColumnChunk(bytes.NewReader(chunk), field, &format.ColumnChunk{MetaData: meta})
	require.NoError(t, err)
	return got
}

func TestReadColumnChunkPlainRoundTrip(t *testing.T) {
	root := StructField("row", Required, DataField("id", Required, format.Int32))
	NewSchema("test", root)
	id := root.Fields[0]

	col := &DataColumn{
		Field:   id,
		Values:  []Value{Int32Value(3), Int32Value(1), Int32Value(2), Int32Value(1)},
		NumRows: 4,
	}

	got := roundTrip(t, id, col)
	assert.Equal(t, col.Values, got.Values)
	assert.Equal(t, col.NumRows, got.NumRows)
	assert.Nil(t, got.DefLevels)
	assert.Nil(t, got.RepLevels)
}

func TestReadColumnChunkDictionaryRoundTrip(t *testing.T) {
	root := StructField("row", Required, DataField("id", Required, format.Int32))
	NewSchema("test", root)
	id := root.Fields[0]

	values := make([]Value, 100)
	for i := range values {
		values[i] = Int32Value(int32(i % 3))
	}
	col := &DataColumn{Field: id, Values: values, NumRows: len(values)}

	got := roundTrip(t, id, col)
	assert.Equal(t, col.Values, got.Values)
	assert.Equal(t, col.NumRows, got.NumRows)
}

func TestReadColumnChunkOptionalNullsRoundTrip(t *testing.T) {
	root := StructField("row", Required, DataField("name", Optional, format.ByteArray))
	NewSchema("test", root)
	name := root.Fields[0]

	col := &DataColumn{
		Field:     name,
		Values:    []Value{ByteArrayValue([]byte("a")), ByteArrayValue([]byte("b"))},
		DefLevels: []byte{1, 0, 1},
		NumRows:   3,
	}

	got := roundTrip(t, name, col, DataPageStatistics(true))
	assert.Equal(t, col.Values, got.Values)
	assert.Equal(t, col.DefLevels, got.DefLevels)
	assert.Equal(t, col.NumRows, got.NumRows)
}
