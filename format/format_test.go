package format_test

import (
	"reflect"
	"testing"

	"github.com/shredcol/parquetcol/format"
)

func TestMarshalUnmarshalFileMetaData(t *testing.T) {
	metadata := &format.FileMetaData{
		Version: 1,
		Schema: []format.SchemaElement{
			{Name: "hello"},
		},
		RowGroups: []format.RowGroup{},
	}

	b, err := format.EncodeFileMetaData(metadata)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := format.DecodeFileMetaData(b)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(*metadata, decoded) {
		t.Errorf("values mismatch:\nexpected:\n%#v\nfound:\n%#v", metadata, decoded)
	}
}

func TestMarshalUnmarshalPageHeader(t *testing.T) {
	header := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: 128,
		CompressedPageSize:   64,
		DataPageHeader: &format.DataPageHeader{
			NumValues:               10,
			Encoding:                format.Plain,
			DefinitionLevelEncoding: format.RLE,
			RepetitionLevelEncoding: format.RLE,
		},
	}

	b, err := format.EncodePageHeader(header)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := format.DecodePageHeader(b)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(*header, decoded) {
		t.Errorf("values mismatch:\nexpected:\n%#v\nfound:\n%#v", header, decoded)
	}
}
