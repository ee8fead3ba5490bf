// Package format defines the on-disk structures of the Parquet file format:
// the thrift-encoded footer (FileMetaData and everything it references) and
// the page headers that precede every data and dictionary page.
//
// The struct tags follow the convention used throughout this module's wire
// types: `thrift:"<field-id>,required"` or `thrift:"<field-id>,optional"`,
// consumed by github.com/segmentio/encoding/thrift's compact-protocol codec.
// This package only describes the wire shapes; it does not itself decide
// which encodings or codecs the rest of the module implements (see the
// encoding and compress packages for that).
package format

import "fmt"

// Type is the physical (on-disk) type of a column's values.
type Type int32

const (
	Boolean Type = iota
	Int32
	Int64
	Int96 // deprecated, kept for reading legacy files
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return fmt.Sprintf("Type(%d)", int32(t))
	}
}

// FieldRepetitionType says whether a schema element is required, optional,
// or repeated.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = iota
	Optional
	Repeated
)

func (t FieldRepetitionType) String() string {
	switch t {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Repeated:
		return "REPEATED"
	default:
		return fmt.Sprintf("FieldRepetitionType(%d)", int32(t))
	}
}

// Encoding identifies how the values of a page were encoded.
type Encoding int32

const (
	Plain Encoding = iota
	_             // GROUP_VAR_INT, never implemented by any known reader
	PlainDictionary
	RLE
	BitPacked // deprecated
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	RLEDictionary
	ByteStreamSplit
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return fmt.Sprintf("Encoding(%d)", int32(e))
	}
}

// CompressionCodec identifies the codec used to compress a page's bytes.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = iota
	Snappy
	Gzip
	Lzo
	Brotli
	Lz4
	Zstd
	Lz4Raw
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lzo:
		return "LZO"
	case Brotli:
		return "BROTLI"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Lz4Raw:
		return "LZ4_RAW"
	default:
		return fmt.Sprintf("CompressionCodec(%d)", int32(c))
	}
}

// PageType identifies the kind of page a PageHeader precedes.
type PageType int32

const (
	DataPage PageType = iota
	IndexPage
	DictionaryPage
	DataPageV2
)

func (t PageType) String() string {
	switch t {
	case DataPage:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return fmt.Sprintf("PageType(%d)", int32(t))
	}
}

// BoundaryOrder describes how the min/max values recorded in a ColumnIndex
// relate to page order, letting readers skip pages via binary search.
type BoundaryOrder int32

const (
	Unordered BoundaryOrder = iota
	Ascending
	Descending
)

func (o BoundaryOrder) String() string {
	switch o {
	case Unordered:
		return "UNORDERED"
	case Ascending:
		return "ASCENDING"
	case Descending:
		return "DESCENDING"
	default:
		return fmt.Sprintf("BoundaryOrder(%d)", int32(o))
	}
}

// ConvertedType is the legacy (pre-LogicalType) annotation of a schema
// element's interpretation, kept for compatibility with older writers.
type ConvertedType int32

const (
	UTF8 ConvertedType = iota
	Map
	MapKeyValue
	List
	Enum
	Decimal
	Date
	TimeMillis
	TimeMicros
	TimestampMillis
	TimestampMicros
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32Converted
	Int64Converted
	Json
	Bson
	Interval
)

// KeyValue is a single entry of the footer's free-form metadata map.
type KeyValue struct {
	Key   string  `thrift:"1,required"`
	Value *string `thrift:"2,optional"`
}

// SortingColumn records that a row group's rows are sorted by a column.
type SortingColumn struct {
	ColumnIdx  int32 `thrift:"1,required"`
	Descending bool  `thrift:"2,required"`
	NullsFirst bool  `thrift:"3,required"`
}

// StringType, DecimalType, and the other Logical* structs are the payloads
// of the LogicalType union: a SchemaElement carries at most one of them.
type StringType struct{}
type MapLogicalType struct{}
type ListLogicalType struct{}
type EnumType struct{}
type DateType struct{}
type NullType struct{}

type DecimalType struct {
	Scale     int32 `thrift:"1,required"`
	Precision int32 `thrift:"2,required"`
}

type TimeUnit struct {
	Millis *struct{} `thrift:"1,optional"`
	Micros *struct{} `thrift:"2,optional"`
	Nanos  *struct{} `thrift:"3,optional"`
}

type TimeType struct {
	IsAdjustedToUTC bool     `thrift:"1,required"`
	Unit            TimeUnit `thrift:"2,required"`
}

type TimestampType struct {
	IsAdjustedToUTC bool     `thrift:"1,required"`
	Unit            TimeUnit `thrift:"2,required"`
}

type IntType struct {
	BitWidth int8 `thrift:"1,required"`
	IsSigned bool `thrift:"2,required"`
}

// LogicalType is the modern replacement for ConvertedType: a thrift union
// encoded as a struct where exactly one field is set.
type LogicalType struct {
	STRING    *StringType     `thrift:"1,optional"`
	MAP       *MapLogicalType `thrift:"2,optional"`
	LIST      *ListLogicalType `thrift:"3,optional"`
	ENUM      *EnumType       `thrift:"4,optional"`
	DECIMAL   *DecimalType    `thrift:"5,optional"`
	DATE      *DateType       `thrift:"6,optional"`
	TIME      *TimeType       `thrift:"7,optional"`
	TIMESTAMP *TimestampType  `thrift:"8,optional"`
	INTEGER   *IntType        `thrift:"10,optional"`
	UNKNOWN   *NullType       `thrift:"11,optional"`
	JSON      *struct{}       `thrift:"12,optional"`
	BSON      *struct{}       `thrift:"13,optional"`
}

// SchemaElement is one flattened node of the file's schema tree, identified
// by its position in FileMetaData.Schema (a pre-order walk) and its
// NumChildren (0 for leaves).
type SchemaElement struct {
	Type           *Type                `thrift:"1,optional"`
	TypeLength     *int32               `thrift:"2,optional"`
	RepetitionType *FieldRepetitionType `thrift:"3,optional"`
	Name           string               `thrift:"4,required"`
	NumChildren    *int32               `thrift:"5,optional"`
	ConvertedType  *ConvertedType       `thrift:"6,optional"`
	Scale          *int32               `thrift:"7,optional"`
	Precision      *int32               `thrift:"8,optional"`
	FieldID        *int32               `thrift:"9,optional"`
	LogicalType    *LogicalType         `thrift:"10,optional"`
}

// Statistics records the optional min/max/null-count/distinct-count summary
// of a column chunk or a single page (DataPageHeader or DataPageHeaderV2).
type Statistics struct {
	Max           []byte `thrift:"1,optional"`
	Min           []byte `thrift:"2,optional"`
	NullCount     *int64 `thrift:"3,optional"`
	DistinctCount *int64 `thrift:"4,optional"`
	MaxValue      []byte `thrift:"5,optional"`
	MinValue      []byte `thrift:"6,optional"`
}

// PageLocation is one entry of an OffsetIndex: where a page begins in the
// column chunk and the index of its first row within the row group.
type PageLocation struct {
	Offset             int64 `thrift:"1,required"`
	CompressedPageSize int32 `thrift:"2,required"`
	FirstRowIndex      int64 `thrift:"3,required"`
}

// OffsetIndex lets a reader seek directly to the page containing a given
// row index without scanning page headers from the start of the chunk.
type OffsetIndex struct {
	PageLocations []PageLocation `thrift:"1,required"`
}

// ColumnIndex lets a reader skip whole pages using per-page min/max
// statistics before decompressing them.
type ColumnIndex struct {
	NullPages     []bool        `thrift:"1,required"`
	MinValues     [][]byte      `thrift:"2,required"`
	MaxValues     [][]byte      `thrift:"3,required"`
	BoundaryOrder BoundaryOrder `thrift:"4,required"`
	NullCounts    []int64       `thrift:"5,optional"`
}

// DataPageHeader is the header of a DATA_PAGE (v1) page: levels and values
// are all RLE/bit-packed or PLAIN encoded back to back, with no separate
// framing between them beyond the level lengths written inline.
type DataPageHeader struct {
	NumValues               int32      `thrift:"1,required"`
	Encoding                Encoding   `thrift:"2,required"`
	DefinitionLevelEncoding Encoding   `thrift:"3,required"`
	RepetitionLevelEncoding Encoding   `thrift:"4,required"`
	Statistics              *Statistics `thrift:"5,optional"`
}

// DataPageHeaderV2 is the header of a DATA_PAGE_V2 page: levels are always
// RLE encoded with their lengths given here, so a reader can skip them to
// reach the (possibly independently compressed) values without decoding.
type DataPageHeaderV2 struct {
	NumValues                  int32       `thrift:"1,required"`
	NumNulls                   int32       `thrift:"2,required"`
	NumRows                    int32       `thrift:"3,required"`
	Encoding                   Encoding    `thrift:"4,required"`
	DefinitionLevelsByteLength int32       `thrift:"5,required"`
	RepetitionLevelsByteLength int32       `thrift:"6,required"`
	IsCompressed               bool        `thrift:"7,optional"`
	Statistics                 *Statistics `thrift:"8,optional"`
}

// DictionaryPageHeader is the header of a DICTIONARY_PAGE page: a flat list
// of PLAIN-encoded values referenced by index from RLE_DICTIONARY pages.
type DictionaryPageHeader struct {
	NumValues int32    `thrift:"1,required"`
	Encoding  Encoding `thrift:"2,required"`
	IsSorted  *bool    `thrift:"3,optional"`
}

// PageHeader precedes every page's bytes in a column chunk. Exactly one of
// DataPageHeader, DataPageHeaderV2, or DictionaryPageHeader is set,
// according to Type.
type PageHeader struct {
	Type                 PageType              `thrift:"1,required"`
	UncompressedPageSize int32                 `thrift:"2,required"`
	CompressedPageSize   int32                 `thrift:"3,required"`
	CRC                  *int32                `thrift:"4,optional"`
	DataPageHeader       *DataPageHeader       `thrift:"5,optional"`
	DictionaryPageHeader *DictionaryPageHeader `thrift:"7,optional"`
	DataPageHeaderV2     *DataPageHeaderV2     `thrift:"8,optional"`
}

// ColumnMetaData is the per-column-chunk metadata recorded in the footer:
// where its pages live in the file, which encodings and codec they use, and
// (optionally) chunk-wide statistics.
type ColumnMetaData struct {
	Type                  Type             `thrift:"1,required"`
	Encodings             []Encoding       `thrift:"2,required"`
	PathInSchema          []string         `thrift:"3,required"`
	Codec                 CompressionCodec `thrift:"4,required"`
	NumValues             int64            `thrift:"5,required"`
	TotalUncompressedSize int64            `thrift:"6,required"`
	TotalCompressedSize   int64            `thrift:"7,required"`
	KeyValueMetadata      []KeyValue       `thrift:"8,optional"`
	DataPageOffset        int64            `thrift:"9,required"`
	IndexPageOffset       *int64           `thrift:"10,optional"`
	DictionaryPageOffset  *int64           `thrift:"11,optional"`
	Statistics            *Statistics      `thrift:"12,optional"`
}

// ColumnChunk points at one column's metadata, either inlined (the common
// case) or, for cross-file references, via FilePath/FileOffset.
type ColumnChunk struct {
	FilePath   *string         `thrift:"1,optional"`
	FileOffset int64           `thrift:"2,required"`
	MetaData   *ColumnMetaData `thrift:"3,optional"`
}

// RowGroup is a horizontal partition of the file's rows: every column chunk
// in Columns covers the same NumRows rows.
type RowGroup struct {
	Columns             []ColumnChunk   `thrift:"1,required"`
	TotalByteSize        int64          `thrift:"2,required"`
	NumRows              int64          `thrift:"3,required"`
	SortingColumns       []SortingColumn `thrift:"4,optional"`
	FileOffset           *int64         `thrift:"5,optional"`
	TotalCompressedSize  *int64         `thrift:"6,optional"`
	Ordinal              *int16         `thrift:"7,optional"`
}

// FileMetaData is the thrift struct stored compact-encoded at the end of
// every Parquet file, just before the 4-byte footer length and the trailing
// "PAR1" magic.
type FileMetaData struct {
	Version          int32           `thrift:"1,required"`
	Schema           []SchemaElement `thrift:"2,required"`
	NumRows          int64           `thrift:"3,required"`
	RowGroups        []RowGroup      `thrift:"4,required"`
	KeyValueMetadata []KeyValue      `thrift:"5,optional"`
	CreatedBy        *string         `thrift:"6,optional"`
}

// MagicBytes is the 4-byte marker at the start and end of a valid file.
var MagicBytes = [4]byte{'P', 'A', 'R', '1'}
