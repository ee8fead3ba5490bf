package parquetcol

import (
	"encoding/binary"
	"io"

	"github.com/shredcol/parquetcol/format"
)

// Reader opens a Parquet file's footer and exposes its schema and row
// groups. Reading pages happens lazily per RowGroup.Column call; OpenReader
// itself only reads the magic bytes and the footer, grounded on the
// teacher's OpenFile, which documents the same "successfully opening a
// file does not validate pages" contract.
type Reader struct {
	src    io.ReaderAt
	size   int64
	config *ReaderConfig
	meta   format.FileMetaData
	schema *Schema
}

// OpenReader reads the magic header/footer and thrift-encoded FileMetaData
// of a Parquet file occupying the first size bytes of src.
func OpenReader(src io.ReaderAt, size int64, opts ...ReaderOption) (*Reader, error) {
	if size < int64(len(format.MagicBytes))*2+8 {
		return nil, errorf(Malformed, "file is too small to be a parquet file: %d bytes", size)
	}

	var head [4]byte
	if _, err := src.ReadAt(head[:], 0); err != nil {
		return nil, errorf(IoFailure, "reading magic header: %w", err)
	}
	if head != format.MagicBytes {
		return nil, errorf(Malformed, "invalid magic header %q", head[:])
	}

	var tail [8]byte
	if _, err := src.ReadAt(tail[:], size-8); err != nil {
		return nil, errorf(IoFailure, "reading magic footer: %w", err)
	}
	if [4]byte{tail[4], tail[5], tail[6], tail[7]} != format.MagicBytes {
		return nil, errorf(Malformed, "invalid magic footer %q", tail[4:])
	}

	footerSize := int64(binary.LittleEndian.Uint32(tail[:4]))
	if footerSize < 0 || footerSize+8 > size {
		return nil, errorf(Malformed, "invalid footer size %d for file of %d bytes", footerSize, size)
	}

	footer := make([]byte, footerSize)
	if _, err := src.ReadAt(footer, size-(footerSize+8)); err != nil {
		return nil, errorf(IoFailure, "reading footer: %w", err)
	}

	meta, err := format.DecodeFileMetaData(footer)
	if err != nil {
		return nil, errorf(Malformed, "decoding file metadata: %w", err)
	}
	if len(meta.Schema) == 0 {
		return nil, errorf(Malformed, "file metadata has no schema")
	}

	schema, err := SchemaFromElements(meta.Schema)
	if err != nil {
		return nil, errorf(Malformed, "building schema from file metadata: %w", err)
	}

	return &Reader{
		src:    src,
		size:   size,
		config: NewReaderConfig(opts...),
		meta:   meta,
		schema: schema,
	}, nil
}

// Schema returns the file's decoded schema tree.
func (r *Reader) Schema() *Schema { return r.schema }

// NumRows returns the total number of rows across every row group.
func (r *Reader) NumRows() int64 { return r.meta.NumRows }

// NumRowGroups returns the number of row groups the file declares.
func (r *Reader) NumRowGroups() int { return len(r.meta.RowGroups) }

// RowGroup returns a view over the i'th row group, panicking if i is out
// of range (the same contract as slice indexing, since row groups are a
// fixed, known-length sequence once the file is open).
func (r *Reader) RowGroup(i int) *RowGroup {
	return &RowGroup{reader: r, meta: &r.meta.RowGroups[i]}
}

// RowGroup is one horizontal partition of a Reader's rows. Column chunk
// bytes are only read and decoded when Column or Columns is called.
type RowGroup struct {
	reader *Reader
	meta   *format.RowGroup
}

// NumRows returns the number of rows in the row group.
func (g *RowGroup) NumRows() int64 { return g.meta.NumRows }

// Column decodes and returns the leaf column chunk reachable at leafPath
// from the schema root.
func (g *RowGroup) Column(leafPath ...string) (*DataColumn, error) {
	field := g.reader.schema.Lookup(leafPath...)
	if field == nil || field.Kind != DataKind {
		return nil, errorf(SchemaAssignConflict, "no leaf column at path %v", leafPath)
	}
	chunk, err := g.chunkFor(field)
	if err != nil {
		return nil, err
	}
	return readColumnChunk(g.reader.src, field, chunk)
}

// Columns decodes every leaf column chunk in the row group, in schema
// (file) order.
func (g *RowGroup) Columns() ([]*DataColumn, error) {
	leaves := g.reader.schema.Leaves()
	columns := make([]*DataColumn, len(leaves))
	for i, field := range leaves {
		chunk, err := g.chunkFor(field)
		if err != nil {
			return nil, err
		}
		col, err := readColumnChunk(g.reader.src, field, chunk)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return columns, nil
}

func (g *RowGroup) chunkFor(field *Field) (*format.ColumnChunk, error) {
	idx := field.ColumnIndex()
	if idx < 0 || idx >= len(g.meta.Columns) {
		return nil, errorf(SchemaAssignConflict, "column index %d out of range for row group with %d columns", idx, len(g.meta.Columns))
	}
	return &g.meta.Columns[idx], nil
}
