package parquetcol

import (
	"bufio"
	"io"

	"github.com/shredcol/parquetcol/format"
)

const defaultPageReaderBufferSize = 4096

// DataColumn is the fully decoded contents of one leaf field's column
// chunk: one Value per non-null slot, plus a definition/repetition level
// per slot (including null ones) when the field is optional or repeated.
type DataColumn struct {
	Field     *Field
	Values    []Value
	DefLevels []byte // nil iff Field.MaxDefinitionLevel() == 0
	RepLevels []byte // nil iff Field.MaxRepetitionLevel() == 0
	NumRows   int
}

// readColumnChunk decodes every page of the column chunk described by
// chunk's metadata, in file order: an optional dictionary page, then one
// or more data pages, mirroring the teacher's ColumnPages.Next() page walk
// but eagerly accumulating everything into one DataColumn rather than
// exposing a streaming page iterator, since this core's contract is
// "decode a whole column chunk", not incremental row-group scanning.
func readColumnChunk(src io.ReaderAt, field *Field, chunk *format.ColumnChunk) (*DataColumn, error) {
	meta := chunk.MetaData
	if meta == nil {
		return nil, errorf(Malformed, "column chunk for %v has no metadata", field.Path())
	}

	offset := meta.DataPageOffset
	if meta.DictionaryPageOffset != nil && *meta.DictionaryPageOffset < offset {
		offset = *meta.DictionaryPageOffset
	}

	section := io.NewSectionReader(src, offset, meta.TotalCompressedSize)
	r := bufio.NewReaderSize(section, defaultPageReaderBufferSize)

	col := &DataColumn{Field: field}
	var dict []Value

	for {
		header, err := format.DecodePageHeaderFrom(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errorf(Malformed, "decoding page header for %v: %w", field.Path(), err)
		}

		compressed := make([]byte, header.CompressedPageSize)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, errorf(IoFailure, "reading page body for %v: %w", field.Path(), err)
		}

		raw, err := decompressPage(meta.Codec, compressed, int(header.UncompressedPageSize))
		if err != nil {
			return nil, err
		}

		switch header.Type {
		case format.DictionaryPage:
			if header.DictionaryPageHeader == nil {
				return nil, errorf(Malformed, "DICTIONARY_PAGE header missing for %v", field.Path())
			}
			dict, err = readDictionaryPage(field, header.DictionaryPageHeader, raw)
			if err != nil {
				return nil, err
			}

		case format.DataPage:
			if header.DataPageHeader == nil {
				return nil, errorf(Malformed, "DATA_PAGE header missing for %v", field.Path())
			}
			p, err := decodeDataPageV1(field, header.DataPageHeader, raw, dict)
			if err != nil {
				return nil, err
			}
			appendPage(col, p)

		case format.DataPageV2:
			if header.DataPageHeaderV2 == nil {
				return nil, errorf(Malformed, "DATA_PAGE_V2 header missing for %v", field.Path())
			}
			p, err := decodeDataPageV2(field, header.DataPageHeaderV2, raw, dict)
			if err != nil {
				return nil, err
			}
			appendPage(col, p)

		default:
			return nil, errorf(Malformed, "unrecognized page type %s for %v", header.Type, field.Path())
		}
	}

	return col, nil
}

func appendPage(col *DataColumn, p page) {
	col.Values = append(col.Values, p.values...)
	if p.defLevels != nil {
		col.DefLevels = append(col.DefLevels, p.defLevels...)
	}
	if p.repLevels != nil {
		col.RepLevels = append(col.RepLevels, p.repLevels...)
	}
	col.NumRows += p.numRows
}
