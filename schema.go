package parquetcol

import (
	"fmt"
	"strings"

	"github.com/shredcol/parquetcol/format"
)

// Schema is a computed schema tree: a root Field plus the derived
// attributes (Path, MaxDefinitionLevel, MaxRepetitionLevel, column index)
// that only make sense once the whole tree is known. Build one with
// NewSchema; Field values on their own carry no level information until
// they're attached to a Schema.
type Schema struct {
	Name   string
	root   *Field
	leaves []*Field
}

// NewSchema computes path and level information for root (a StructKind
// field) and returns a Schema wrapping it. root and its descendants are
// mutated in place and must not be shared between two NewSchema calls.
func NewSchema(name string, root *Field) *Schema {
	if root.Kind != StructKind {
		panic("parquet: schema root must be a struct field")
	}
	s := &Schema{Name: name, root: root}
	compute(root, nil, 0, 0)
	s.leaves = appendLeaves(s.leaves, root)
	for i, leaf := range s.leaves {
		leaf.columnIndex = i
	}
	return s
}

// compute walks f and its descendants depth-first, filling in path and
// level fields. parentDef/parentRep are the levels inherited from the
// parent; f's own Repetition may bump each by one, mirroring the
// teacher's Schema.Compute increment rule (repeated bumps both repetition
// and definition level, optional bumps only definition level, required
// bumps neither) — generalized here from Schema to Field and applied
// uniformly to List/Map/Struct/Data kinds rather than only to group
// nodes, since Optional/Repeated leaves need the same arithmetic.
func compute(f *Field, parentPath []string, parentDef, parentRep int) {
	f.path = appendPath(parentPath, f.Name)
	def, rep := parentDef, parentRep
	switch f.Repetition {
	case Optional:
		def++
	case Repeated:
		def++
		rep++
	}
	f.maxDefLevel = def
	f.maxRepLevel = rep

	children, ok := f.children()
	if !ok {
		return
	}
	for _, child := range children {
		compute(child, f.path, def, rep)
	}
}

func appendPath(path []string, name string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = name
	return next
}

func appendLeaves(dst []*Field, f *Field) []*Field {
	children, ok := f.children()
	if !ok {
		return append(dst, f)
	}
	for _, child := range children {
		dst = appendLeaves(dst, child)
	}
	return dst
}

// Root returns the schema's top-level struct field.
func (s *Schema) Root() *Field { return s.root }

// Leaves returns the schema's DataKind fields in the depth-first order
// they appear in the file's physical column layout; the slice index is
// each leaf's column index.
func (s *Schema) Leaves() []*Field { return s.leaves }

// NumColumns returns the number of physical columns (leaf fields) the
// schema describes.
func (s *Schema) NumColumns() int { return len(s.leaves) }

// ColumnIndex returns the leaf's position in Leaves, or -1 if f is not a
// leaf of this schema.
func (f *Field) ColumnIndex() int {
	if f.Kind != DataKind {
		return -1
	}
	return f.columnIndex
}

// Lookup finds the field reachable from the root by following path one
// name at a time, or nil if no such field exists.
func (s *Schema) Lookup(path ...string) *Field {
	node := s.root
	for _, name := range path {
		var next *Field
		children, ok := node.children()
		if !ok {
			return nil
		}
		for _, child := range children {
			if child.Name == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// SchemaElements flattens the schema into the pre-order format.SchemaElement
// sequence a file footer stores, with a root element named s.Name.
func (s *Schema) SchemaElements() []format.SchemaElement {
	root := format.SchemaElement{Name: s.Name}
	numChildren := int32(len(s.root.Fields))
	root.NumChildren = &numChildren
	elements := make([]format.SchemaElement, 0, 1+len(s.leaves)*2)
	elements = append(elements, root)
	for _, child := range s.root.Fields {
		elements = child.schemaElements(elements)
	}
	return elements
}

// SchemaFromElements rebuilds a Schema from the flat SchemaElement sequence
// stored in a file's footer, the inverse of Schema.SchemaElements.
func SchemaFromElements(elements []format.SchemaElement) (*Schema, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("parquet: cannot build schema from an empty element list")
	}
	root := elements[0]
	field, consumed, err := fieldFromElements(elements[1:], int(root.GetNumChildren()))
	if err != nil {
		return nil, err
	}
	if consumed != len(elements)-1 {
		return nil, fmt.Errorf("parquet: schema declares %d elements but only %d were consumed", len(elements)-1, consumed)
	}
	group := &Field{Name: root.Name, Kind: StructKind, Fields: field}
	return NewSchema(root.Name, group), nil
}

// fieldFromElements consumes numFields sibling subtrees from elements and
// returns the constructed Field slice along with how many flat elements
// were used, mirroring the teacher's flatThriftSchemaToTreeRecurse offset
// bookkeeping.
func fieldFromElements(elements []format.SchemaElement, numFields int) ([]*Field, int, error) {
	fields := make([]*Field, 0, numFields)
	offset := 0
	for i := 0; i < numFields; i++ {
		if offset >= len(elements) {
			return nil, offset, fmt.Errorf("parquet: truncated schema element list")
		}
		elem := elements[offset]
		field, consumed, err := fieldFromElement(elem, elements[offset+1:])
		if err != nil {
			return nil, offset, err
		}
		fields = append(fields, field)
		offset += 1 + consumed
	}
	return fields, offset, nil
}

func fieldFromElement(elem format.SchemaElement, rest []format.SchemaElement) (*Field, int, error) {
	repetition := Required
	if elem.RepetitionType != nil {
		switch *elem.RepetitionType {
		case format.Optional:
			repetition = Optional
		case format.Repeated:
			repetition = Repeated
		}
	}

	numChildren := int(elem.GetNumChildren())
	if numChildren == 0 {
		if elem.Type == nil {
			return nil, 0, fmt.Errorf("parquet: leaf schema element %q has no physical type", elem.Name)
		}
		f := &Field{Name: elem.Name, Kind: DataKind, Repetition: repetition, Type: *elem.Type}
		if elem.TypeLength != nil {
			f.TypeLength = int(*elem.TypeLength)
		}
		f.Logical = elem.LogicalType
		f.Converted = elem.ConvertedType
		return f, 0, nil
	}

	children, consumed, err := fieldFromElements(rest, numChildren)
	if err != nil {
		return nil, 0, err
	}

	switch convertedTypeName(elem.ConvertedType) {
	case "LIST":
		if len(children) != 1 {
			return nil, 0, fmt.Errorf("parquet: LIST schema element %q must have exactly one child", elem.Name)
		}
		return &Field{Name: elem.Name, Kind: ListKind, Repetition: repetition, Element: children[0]}, consumed, nil
	case "MAP", "MAP_KEY_VALUE":
		if len(children) != 2 {
			return nil, 0, fmt.Errorf("parquet: MAP schema element %q must have exactly two children", elem.Name)
		}
		return &Field{Name: elem.Name, Kind: MapKind, Repetition: repetition, Key: children[0], Value: children[1]}, consumed, nil
	default:
		return &Field{Name: elem.Name, Kind: StructKind, Repetition: repetition, Fields: children}, consumed, nil
	}
}

func convertedTypeName(ct *format.ConvertedType) string {
	if ct == nil {
		return ""
	}
	switch *ct {
	case format.List:
		return "LIST"
	case format.Map, format.MapKeyValue:
		return "MAP"
	default:
		return ""
	}
}

// String renders the schema as an indented tree, for debugging and the
// cat CLI.
func (s *Schema) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "message %s {\n", s.Name)
	for _, f := range s.root.Fields {
		writeFieldTree(&b, f, 1)
	}
	b.WriteString("}\n")
	return b.String()
}

func writeFieldTree(b *strings.Builder, f *Field, depth int) {
	indent := strings.Repeat("  ", depth)
	switch f.Kind {
	case DataKind:
		fmt.Fprintf(b, "%s%s %s %s;\n", indent, f.Repetition, f.Type, f.Name)
	case ListKind:
		fmt.Fprintf(b, "%s%s list<%s> %s {\n", indent, f.Repetition, f.Element.Name, f.Name)
		writeFieldTree(b, f.Element, depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
	case MapKind:
		fmt.Fprintf(b, "%s%s map %s {\n", indent, f.Repetition, f.Name)
		writeFieldTree(b, f.Key, depth+1)
		writeFieldTree(b, f.Value, depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
	case StructKind:
		fmt.Fprintf(b, "%s%s group %s {\n", indent, f.Repetition, f.Name)
		for _, child := range f.Fields {
			writeFieldTree(b, child, depth+1)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	}
}
