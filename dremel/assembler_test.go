package dremel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shredcol/parquetcol"
	"github.com/shredcol/parquetcol/dremel"
	"github.com/shredcol/parquetcol/format"
)

func schemaOf(root *parquetcol.Field) *parquetcol.Schema {
	return parquetcol.NewSchema("root", root)
}

func TestAssembleFlatRequired(t *testing.T) {
	root := parquetcol.StructField("root", parquetcol.Required,
		parquetcol.DataField("id", parquetcol.Required, format.Int64),
		parquetcol.DataField("name", parquetcol.Required, format.ByteArray),
	)
	schema := schemaOf(root)

	idField := schema.Lookup("id")
	nameField := schema.Lookup("name")

	columns := []*parquetcol.DataColumn{
		{
			Field:   idField,
			Values:  []parquetcol.Value{parquetcol.Int64Value(1), parquetcol.Int64Value(2)},
			NumRows: 2,
		},
		{
			Field:   nameField,
			Values:  []parquetcol.Value{parquetcol.ByteArrayValue([]byte("a")), parquetcol.ByteArrayValue([]byte("b"))},
			NumRows: 2,
		},
	}

	rows, err := dremel.Assemble(schema.Root(), columns)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0].Interface().(map[string]interface{})
	require.Equal(t, int64(1), first["id"])
	require.Equal(t, []byte("a"), first["name"])

	second := rows[1].Interface().(map[string]interface{})
	require.Equal(t, int64(2), second["id"])
	require.Equal(t, []byte("b"), second["name"])
}

func TestAssembleOptionalScalar(t *testing.T) {
	root := parquetcol.StructField("root", parquetcol.Required,
		parquetcol.DataField("id", parquetcol.Required, format.Int32),
		parquetcol.DataField("score", parquetcol.Optional, format.Double),
	)
	schema := schemaOf(root)

	idField := schema.Lookup("id")
	scoreField := schema.Lookup("score")
	require.Equal(t, 1, scoreField.MaxDefinitionLevel())

	columns := []*parquetcol.DataColumn{
		{
			Field:   idField,
			Values:  []parquetcol.Value{parquetcol.Int32Value(10), parquetcol.Int32Value(20)},
			NumRows: 2,
		},
		{
			Field:     scoreField,
			Values:    []parquetcol.Value{parquetcol.DoubleValue(9.5)},
			DefLevels: []byte{1, 0},
			NumRows:   2,
		},
	}

	rows, err := dremel.Assemble(schema.Root(), columns)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.False(t, rows[0].Fields["score"].Null)
	require.Equal(t, 9.5, rows[0].Fields["score"].Value.Double())
	require.True(t, rows[1].Fields["score"].Null)
}

func TestAssembleRepeatedList(t *testing.T) {
	tags := parquetcol.ListField("tags", parquetcol.Repeated,
		parquetcol.DataField("element", parquetcol.Required, format.ByteArray))
	root := parquetcol.StructField("root", parquetcol.Required,
		parquetcol.DataField("id", parquetcol.Required, format.Int32),
		tags,
	)
	schema := schemaOf(root)

	idField := schema.Lookup("id")
	tagsList := schema.Lookup("tags")
	elementField := schema.Lookup("tags", "element")
	require.Equal(t, 1, tagsList.MaxRepetitionLevel())
	require.Equal(t, 1, elementField.MaxDefinitionLevel())

	// Row 0: ["x", "y"]; row 1: absent (a single bump can't tell an empty
	// list from a null one, so both decode as a null "tags" field); row 2:
	// ["z"].
	columns := []*parquetcol.DataColumn{
		{
			Field:   idField,
			Values:  []parquetcol.Value{parquetcol.Int32Value(1), parquetcol.Int32Value(2), parquetcol.Int32Value(3)},
			NumRows: 3,
		},
		{
			Field: elementField,
			Values: []parquetcol.Value{
				parquetcol.ByteArrayValue([]byte("x")),
				parquetcol.ByteArrayValue([]byte("y")),
				parquetcol.ByteArrayValue([]byte("z")),
			},
			DefLevels: []byte{1, 1, 0, 1},
			RepLevels: []byte{0, 1, 0, 0},
			NumRows:   3,
		},
	}

	rows, err := dremel.Assemble(schema.Root(), columns)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0].Interface().(map[string]interface{})
	require.Equal(t, []interface{}{[]byte("x"), []byte("y")}, first["tags"])

	second := rows[1].Interface().(map[string]interface{})
	require.Nil(t, second["tags"])
	require.True(t, rows[1].Fields["tags"].Null)

	third := rows[2].Interface().(map[string]interface{})
	require.Equal(t, []interface{}{[]byte("z")}, third["tags"])
}

func TestAssembleRejectsRowCountMismatch(t *testing.T) {
	root := parquetcol.StructField("root", parquetcol.Required,
		parquetcol.DataField("a", parquetcol.Required, format.Int32),
		parquetcol.DataField("b", parquetcol.Required, format.Int32),
	)
	schema := schemaOf(root)

	columns := []*parquetcol.DataColumn{
		{Field: schema.Lookup("a"), Values: []parquetcol.Value{parquetcol.Int32Value(1)}},
		{Field: schema.Lookup("b"), Values: []parquetcol.Value{parquetcol.Int32Value(1), parquetcol.Int32Value(2)}},
	}

	_, err := dremel.Assemble(schema.Root(), columns)
	require.Error(t, err)
	var perr *parquetcol.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, parquetcol.LevelMismatch, perr.Kind)
}
