package parquetcol

import "github.com/shredcol/parquetcol/format"

// ColumnIndex is a read-only view over a column chunk's page-level min/max
// statistics, letting a reader decide which pages are worth decompressing
// before it does so. It wraps format.ColumnIndex directly rather than
// decoding anything new: the index bytes are already fully structured once
// thrift has decoded the footer.
type ColumnIndex struct {
	index *format.ColumnIndex
}

// NewColumnIndex wraps index, or returns nil if index is nil (a column
// chunk with no ColumnIndex entry in the footer).
func NewColumnIndex(index *format.ColumnIndex) *ColumnIndex {
	if index == nil {
		return nil
	}
	return &ColumnIndex{index: index}
}

// NumPages returns the number of pages the index covers.
func (c *ColumnIndex) NumPages() int { return len(c.index.NullPages) }

// NullPage reports whether page i contains only null values.
func (c *ColumnIndex) NullPage(i int) bool { return c.index.NullPages[i] }

// NullCount returns the number of null values in page i, or 0 if the
// writer didn't record null counts.
func (c *ColumnIndex) NullCount(i int) int64 {
	if c.index.NullCounts == nil {
		return 0
	}
	return c.index.NullCounts[i]
}

// MinValue and MaxValue return the PLAIN-encoded bounds recorded for page
// i. They're meaningless (and unspecified) when NullPage(i) is true.
func (c *ColumnIndex) MinValue(i int) []byte { return c.index.MinValues[i] }
func (c *ColumnIndex) MaxValue(i int) []byte { return c.index.MaxValues[i] }

// IsAscending reports whether pages are ordered by increasing min/max, so
// a reader can binary-search for the pages that might hold a given value.
func (c *ColumnIndex) IsAscending() bool { return c.index.BoundaryOrder == format.Ascending }

// IsDescending is the descending-order counterpart to IsAscending.
func (c *ColumnIndex) IsDescending() bool { return c.index.BoundaryOrder == format.Descending }

// OffsetIndex is a read-only view over a column chunk's per-page byte
// offsets and first-row indexes, letting a reader seek directly to a page
// instead of scanning the chunk from its start.
type OffsetIndex struct {
	index *format.OffsetIndex
}

// NewOffsetIndex wraps index, or returns nil if index is nil.
func NewOffsetIndex(index *format.OffsetIndex) *OffsetIndex {
	if index == nil {
		return nil
	}
	return &OffsetIndex{index: index}
}

// NumPages returns the number of pages the index covers.
func (o *OffsetIndex) NumPages() int { return len(o.index.PageLocations) }

// Offset returns the byte offset of page i within its column chunk.
func (o *OffsetIndex) Offset(i int) int64 { return o.index.PageLocations[i].Offset }

// CompressedPageSize returns the on-disk size of page i, headers included.
func (o *OffsetIndex) CompressedPageSize(i int) int32 {
	return o.index.PageLocations[i].CompressedPageSize
}

// FirstRowIndex returns the index, within the row group, of the first row
// stored in page i.
func (o *OffsetIndex) FirstRowIndex(i int) int64 { return o.index.PageLocations[i].FirstRowIndex }
