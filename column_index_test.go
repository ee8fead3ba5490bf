package parquetcol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shredcol/parquetcol/format"
)

func TestColumnIndex(t *testing.T) {
	nullCounts := []int64{0, 1}
	c := NewColumnIndex(&format.ColumnIndex{
		NullPages:     []bool{false, false},
		MinValues:     [][]byte{{1, 0, 0, 0}, {2, 0, 0, 0}},
		MaxValues:     [][]byte{{5, 0, 0, 0}, {9, 0, 0, 0}},
		BoundaryOrder: format.Ascending,
		NullCounts:    nullCounts,
	})

	assert.Equal(t, 2, c.NumPages())
	assert.False(t, c.NullPage(0))
	assert.Equal(t, int64(1), c.NullCount(1))
	assert.Equal(t, []byte{1, 0, 0, 0}, c.MinValue(0))
	assert.Equal(t, []byte{9, 0, 0, 0}, c.MaxValue(1))
	assert.True(t, c.IsAscending())
	assert.False(t, c.IsDescending())
}

func TestNewColumnIndexNil(t *testing.T) {
	assert.Nil(t, NewColumnIndex(nil))
}

func TestOffsetIndex(t *testing.T) {
	o := NewOffsetIndex(&format.OffsetIndex{
		PageLocations: []format.PageLocation{
			{Offset: 0, CompressedPageSize: 100, FirstRowIndex: 0},
			{Offset: 100, CompressedPageSize: 120, FirstRowIndex: 50},
		},
	})

	assert.Equal(t, 2, o.NumPages())
	assert.Equal(t, int64(100), o.Offset(1))
	assert.Equal(t, int32(100), o.CompressedPageSize(0))
	assert.Equal(t, int64(50), o.FirstRowIndex(1))
}

func TestNewOffsetIndexNil(t *testing.T) {
	assert.Nil(t, NewOffsetIndex(nil))
}
