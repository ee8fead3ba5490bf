package parquetcol

import (
	"fmt"

	"github.com/shredcol/parquetcol/format"
)

// Repetition says how many times a field may occur for a given parent
// record: once and never absent (Required), at most once and possibly
// absent (Optional), or any number of times including zero (Repeated).
type Repetition int8

const (
	Required Repetition = iota
	Optional
	Repeated
)

func (r Repetition) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	default:
		return fmt.Sprintf("Repetition(%d)", int8(r))
	}
}

// FieldKind discriminates the variant a Field holds. Fields are a closed
// tagged union rather than an interface hierarchy: the reader and the
// Dremel assembler both need to switch exhaustively over "what shape is
// this field", and a switch over this discriminant on the single Field
// struct is both slower to misuse and harder to extend by accident than an
// open Node interface with reflection underneath (see the design note on
// avoiding runtime type construction).
type FieldKind int8

const (
	// DataKind fields hold scalar values of a physical type.
	DataKind FieldKind = iota
	// ListKind fields repeat a single child Field (their Element).
	ListKind
	// MapKind fields repeat a (Key, Value) child pair.
	MapKind
	// StructKind fields group named child Fields.
	StructKind
)

func (k FieldKind) String() string {
	switch k {
	case DataKind:
		return "data"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	case StructKind:
		return "struct"
	default:
		return fmt.Sprintf("FieldKind(%d)", int8(k))
	}
}

// Field is one node of a schema tree. Exactly the members relevant to its
// Kind are meaningful: Type/TypeLength/Logical for DataKind, Element for
// ListKind, Key/Value for MapKind, Fields for StructKind.
//
// NewSchema fills in each field's path, levels and column index once; after
// that the field is not modified and can be shared between readers. A
// field tree belongs to one Schema: passing it to a second NewSchema call
// overwrites those computed members.
type Field struct {
	Name       string
	Kind       FieldKind
	Repetition Repetition

	// DataKind
	Type       format.Type
	TypeLength int // only meaningful when Type == format.FixedLenByteArray
	Logical    *format.LogicalType
	Converted  *format.ConvertedType

	// ListKind
	Element *Field

	// MapKind
	Key   *Field
	Value *Field

	// StructKind
	Fields []*Field

	// computed by NewSchema/compute; zero until then
	path        []string
	maxDefLevel int
	maxRepLevel int
	columnIndex int
}

// Path returns the dot-free sequence of field names from the schema's root
// to this field, following Parquet's convention of flattening List/Map's
// synthetic "list"/"key_value" wrapper groups out of the logical path.
func (f *Field) Path() []string { return f.path }

// MaxDefinitionLevel returns the highest definition level a value at this
// field can carry: the number of optional or repeated fields from the root
// to (and including) this one.
func (f *Field) MaxDefinitionLevel() int { return f.maxDefLevel }

// MaxRepetitionLevel returns the highest repetition level a value at this
// field can carry: the number of repeated fields from the root to (and
// including) this one.
func (f *Field) MaxRepetitionLevel() int { return f.maxRepLevel }

// IsLeaf reports whether f is a DataKind field, the only kind that ever
// maps onto an actual physical column in the file.
func (f *Field) IsLeaf() bool { return f.Kind == DataKind }

// DataField constructs a scalar-valued leaf field.
func DataField(name string, repetition Repetition, typ format.Type) *Field {
	return &Field{Name: name, Kind: DataKind, Repetition: repetition, Type: typ}
}

// FixedLenByteArrayField constructs a FIXED_LEN_BYTE_ARRAY leaf field of
// the given length, e.g. for UUID or decimal columns.
func FixedLenByteArrayField(name string, repetition Repetition, length int) *Field {
	return &Field{Name: name, Kind: DataKind, Repetition: repetition, Type: format.FixedLenByteArray, TypeLength: length}
}

// ListField constructs a field that repeats element zero or more times.
func ListField(name string, repetition Repetition, element *Field) *Field {
	return &Field{Name: name, Kind: ListKind, Repetition: repetition, Element: element}
}

// MapField constructs a field that repeats a (key, value) pair zero or
// more times. Per the Parquet map convention, key is implicitly required:
// a null map key has no representation on the wire.
func MapField(name string, repetition Repetition, key, value *Field) *Field {
	return &Field{Name: name, Kind: MapKind, Repetition: repetition, Key: key, Value: value}
}

// StructField constructs a field that groups a fixed, named set of child
// fields.
func StructField(name string, repetition Repetition, fields ...*Field) *Field {
	return &Field{Name: name, Kind: StructKind, Repetition: repetition, Fields: fields}
}

// WithLogicalType returns a copy of f annotated with a logical type, for
// leaves that need one (UTF8 strings, decimals, dates, timestamps, ...).
func (f *Field) WithLogicalType(lt *format.LogicalType) *Field {
	g := *f
	g.Logical = lt
	return &g
}

// schemaElements flattens f into the pre-order SchemaElement sequence the
// file format's footer records, the inverse of the decode-side construction
// in schema.go's SchemaFromElements. List and map groups carry the LIST and
// MAP converted types, which is how SchemaFromElements tells them apart
// from structs.
func (f *Field) schemaElements(dst []format.SchemaElement) []format.SchemaElement {
	elem := format.SchemaElement{Name: f.Name}
	if f != nil && f.path != nil {
		rt := f.repetitionType()
		elem.RepetitionType = &rt
	}

	switch f.Kind {
	case DataKind:
		typ := f.Type
		elem.Type = &typ
		if f.Type == format.FixedLenByteArray {
			length := int32(f.TypeLength)
			elem.TypeLength = &length
		}
		elem.LogicalType = f.Logical
		elem.ConvertedType = f.Converted
		dst = append(dst, elem)
		return dst

	case ListKind:
		numChildren := int32(1)
		elem.NumChildren = &numChildren
		ct := format.List
		elem.ConvertedType = &ct
		dst = append(dst, elem)
		return f.Element.schemaElements(dst)

	case MapKind:
		numChildren := int32(2)
		elem.NumChildren = &numChildren
		ct := format.Map
		elem.ConvertedType = &ct
		dst = append(dst, elem)
		dst = f.Key.schemaElements(dst)
		return f.Value.schemaElements(dst)

	case StructKind:
		numChildren := int32(len(f.Fields))
		elem.NumChildren = &numChildren
		dst = append(dst, elem)
		for _, child := range f.Fields {
			dst = child.schemaElements(dst)
		}
		return dst

	default:
		panic(fmt.Sprintf("parquet: invalid field kind %d", f.Kind))
	}
}

func (f *Field) repetitionType() format.FieldRepetitionType {
	switch f.Repetition {
	case Optional:
		return format.Optional
	case Repeated:
		return format.Repeated
	default:
		return format.Required
	}
}

// children returns the direct descendants the schema walk should recurse
// into, and the boolean is false for leaves.
func (f *Field) children() ([]*Field, bool) {
	switch f.Kind {
	case ListKind:
		return []*Field{f.Element}, true
	case MapKind:
		return []*Field{f.Key, f.Value}, true
	case StructKind:
		return f.Fields, true
	default:
		return nil, false
	}
}
