package parquetcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shredcol/parquetcol/format"
)

func testNestedSchema() *Schema {
	root := StructField("row", Required,
		DataField("id", Required, format.Int64),
		StructField("address", Optional,
			DataField("city", Optional, format.ByteArray),
		),
		ListField("tags", Repeated, DataField("element", Required, format.ByteArray)),
	)
	return NewSchema("row", root)
}

func TestFieldLevelsAndPath(t *testing.T) {
	s := testNestedSchema()

	id := s.Lookup("id")
	require.NotNil(t, id)
	assert.Equal(t, []string{"row", "id"}, id.Path())
	assert.Equal(t, 0, id.MaxDefinitionLevel())
	assert.Equal(t, 0, id.MaxRepetitionLevel())

	city := s.Lookup("address", "city")
	require.NotNil(t, city)
	assert.Equal(t, []string{"row", "address", "city"}, city.Path())
	assert.Equal(t, 2, city.MaxDefinitionLevel())
	assert.Equal(t, 0, city.MaxRepetitionLevel())

	element := s.Lookup("tags", "element")
	require.NotNil(t, element)
	assert.Equal(t, 1, element.MaxDefinitionLevel())
	assert.Equal(t, 1, element.MaxRepetitionLevel())
}

func TestFieldIsLeaf(t *testing.T) {
	s := testNestedSchema()
	assert.True(t, s.Lookup("id").IsLeaf())
	assert.False(t, s.Lookup("address").IsLeaf())
	assert.False(t, s.Lookup("tags").IsLeaf())
}

func TestSchemaColumnIndex(t *testing.T) {
	s := testNestedSchema()
	assert.Equal(t, 3, s.NumColumns())

	leaves := s.Leaves()
	for i, leaf := range leaves {
		assert.Equal(t, i, leaf.ColumnIndex())
	}

	nonLeaf := s.Lookup("address")
	assert.Equal(t, -1, nonLeaf.ColumnIndex())
}

func TestSchemaLookupMissing(t *testing.T) {
	s := testNestedSchema()
	assert.Nil(t, s.Lookup("nope"))
	assert.Nil(t, s.Lookup("address", "nope"))
}

func TestSchemaElementsRoundTrip(t *testing.T) {
	s := testNestedSchema()
	elements := s.SchemaElements()

	rebuilt, err := SchemaFromElements(elements)
	require.NoError(t, err)
	assert.Equal(t, s.NumColumns(), rebuilt.NumColumns())

	city := rebuilt.Lookup("address", "city")
	require.NotNil(t, city)
	assert.Equal(t, format.ByteArray, city.Type)
	assert.Equal(t, Optional, city.Repetition)
	assert.Equal(t, 2, city.MaxDefinitionLevel())
}
