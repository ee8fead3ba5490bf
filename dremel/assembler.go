package dremel

import (
	"fmt"

	"github.com/shredcol/parquetcol"
)

// triple is one definition/repetition-level-tagged slot of a leaf column,
// with the value present only when def reaches the leaf's own max
// definition level.
type triple struct {
	value parquetcol.Value
	def   int
	rep   int
}

// leafCursor walks one DataColumn's triples in file order, positioned by a
// chain of the schema fields from the root's immediate child down to (and
// including) the leaf itself.
type leafCursor struct {
	field   *parquetcol.Field
	chain   []*parquetcol.Field
	triples []triple
	pos     int
}

func (c *leafCursor) done() bool { return c.pos >= len(c.triples) }

func (c *leafCursor) peek() triple { return c.triples[c.pos] }

// Assemble reconstructs one Node per row from columns, a leaf column chunk
// per field reachable from root (a StructKind field, typically a Schema's
// Root()). It fails with LevelMismatch if the columns disagree on how many
// rows they hold, or if a column has triples left unconsumed once every row
// has been assembled, mirroring the per-leaf row count invariant the column
// chunk reader otherwise has no way to cross-check.
func Assemble(root *parquetcol.Field, columns []*parquetcol.DataColumn) ([]*Node, error) {
	if root.Kind != parquetcol.StructKind {
		return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf("dremel: assembly root must be a struct field, got %s", root.Kind)}
	}

	cursors := make([]*leafCursor, len(columns))
	numRows := -1
	for i, col := range columns {
		chain, err := fieldChain(root, col.Field)
		if err != nil {
			return nil, err
		}
		cursors[i] = &leafCursor{
			field:   col.Field,
			chain:   chain,
			triples: leafTriples(col),
		}
		n := countRows(col)
		if numRows == -1 {
			numRows = n
		} else if n != numRows {
			return nil, &parquetcol.Error{Kind: parquetcol.LevelMismatch, Err: fmt.Errorf(
				"dremel: column %v has %d rows, expected %d", col.Field.Path(), n, numRows)}
		}
	}
	if numRows < 0 {
		numRows = 0
	}

	rows := make([]*Node, numRows)
	for i := 0; i < numRows; i++ {
		row, err := assembleStructBody(root, cursors, 0)
		if err != nil {
			return nil, err
		}
		row.Field = root
		rows[i] = row
	}

	for _, c := range cursors {
		if !c.done() {
			return nil, &parquetcol.Error{Kind: parquetcol.LevelMismatch, Err: fmt.Errorf(
				"dremel: column %v has unconsumed values after assembling %d rows", c.field.Path(), numRows)}
		}
	}
	return rows, nil
}

// fieldChain walks from root down to leaf following leaf.Path(), which
// begins with root's own name; the returned chain starts at root's
// immediate child and ends at leaf itself.
func fieldChain(root, leaf *parquetcol.Field) ([]*parquetcol.Field, error) {
	path := leaf.Path()
	if len(path) < 2 {
		return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf(
			"dremel: leaf %v has no path under root", leaf.Path())}
	}
	chain := make([]*parquetcol.Field, 0, len(path)-1)
	cur := root
	for _, name := range path[1:] {
		next := childNamed(cur, name)
		if next == nil {
			return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf(
				"dremel: no field named %q under %v", name, cur.Path())}
		}
		chain = append(chain, next)
		cur = next
	}
	return chain, nil
}

func childNamed(f *parquetcol.Field, name string) *parquetcol.Field {
	switch f.Kind {
	case parquetcol.StructKind:
		for _, c := range f.Fields {
			if c.Name == name {
				return c
			}
		}
	case parquetcol.ListKind:
		if f.Element.Name == name {
			return f.Element
		}
	case parquetcol.MapKind:
		if f.Key.Name == name {
			return f.Key
		}
		if f.Value.Name == name {
			return f.Value
		}
	}
	return nil
}

// leafTriples expands a DataColumn's parallel arrays into one triple per
// slot, pulling from Values only for the slots definitionLevel marks
// present: Values holds one entry per present slot, not one per row.
func leafTriples(col *parquetcol.DataColumn) []triple {
	maxDef := col.Field.MaxDefinitionLevel()
	if col.DefLevels == nil {
		out := make([]triple, len(col.Values))
		for i, v := range col.Values {
			out[i] = triple{value: v, def: maxDef}
		}
		return out
	}
	out := make([]triple, len(col.DefLevels))
	vi := 0
	for i, d := range col.DefLevels {
		def := int(d)
		rep := 0
		if col.RepLevels != nil {
			rep = int(col.RepLevels[i])
		}
		if def == maxDef {
			out[i] = triple{value: col.Values[vi], def: def, rep: rep}
			vi++
		} else {
			out[i] = triple{def: def, rep: rep}
		}
	}
	return out
}

// countRows reports how many top-level rows col's triples span: the number
// of repetition-level-0 slots when the field repeats, or one slot per row
// when it never does.
func countRows(col *parquetcol.DataColumn) int {
	if col.RepLevels != nil {
		n := 0
		for _, r := range col.RepLevels {
			if r == 0 {
				n++
			}
		}
		return n
	}
	if col.DefLevels != nil {
		return len(col.DefLevels)
	}
	return len(col.Values)
}

// partition returns the subset of cursors whose chain passes through child
// at chain index depth.
func partition(cursors []*leafCursor, depth int, child *parquetcol.Field) []*leafCursor {
	var out []*leafCursor
	for _, c := range cursors {
		if depth < len(c.chain) && c.chain[depth] == child {
			out = append(out, c)
		}
	}
	return out
}

// assembleField builds exactly one occurrence of f, consuming whatever its
// subtree's cursors need for that occurrence. depth is the chain index at
// which f itself sits for these cursors, used only to partition children;
// a List/Map field knows where its own run of elements ends by comparing
// each candidate triple's repetition level against its own absolute
// MaxRepetitionLevel, so no repetition context needs threading down from
// the caller.
func assembleField(f *parquetcol.Field, cursors []*leafCursor, depth int) (*Node, error) {
	switch f.Kind {
	case parquetcol.DataKind:
		return assembleData(f, cursors)
	case parquetcol.StructKind:
		return assembleStructBody(f, cursors, depth+1)
	case parquetcol.ListKind:
		return assembleList(f, cursors, depth+1)
	case parquetcol.MapKind:
		return assembleMap(f, cursors, depth+1)
	default:
		return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf("dremel: unknown field kind %s", f.Kind)}
	}
}

func assembleData(f *parquetcol.Field, cursors []*leafCursor) (*Node, error) {
	if len(cursors) != 1 {
		return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf(
			"dremel: expected exactly one column for leaf %v, got %d", f.Path(), len(cursors))}
	}
	c := cursors[0]
	if c.done() {
		return nil, &parquetcol.Error{Kind: parquetcol.LevelMismatch, Err: fmt.Errorf(
			"dremel: column %v exhausted before its row count was reached", f.Path())}
	}
	t := c.peek()
	c.pos++
	if t.def < f.MaxDefinitionLevel() {
		return &Node{Field: f, Null: true}, nil
	}
	return &Node{Field: f, Value: t.value}, nil
}

// assembleStructBody builds one occurrence of the struct whose children's
// cursors sit at childDepth, asking each child for exactly one occurrence
// (struct fields never repeat themselves) and deriving the struct's own
// presence from whether any child came back non-null.
func assembleStructBody(f *parquetcol.Field, cursors []*leafCursor, childDepth int) (*Node, error) {
	node := &Node{Field: f, Fields: make(map[string]*Node, len(f.Fields))}
	anyPresent := false
	for _, child := range f.Fields {
		childCursors := partition(cursors, childDepth, child)
		if len(childCursors) == 0 {
			continue
		}
		childNode, err := assembleField(child, childCursors, childDepth)
		if err != nil {
			return nil, err
		}
		node.Fields[child.Name] = childNode
		if !childNode.Null {
			anyPresent = true
		}
	}
	if f.Repetition == parquetcol.Optional && !anyPresent {
		return &Node{Field: f, Null: true}, nil
	}
	return node, nil
}

// assembleList builds one occurrence of a repeated field: zero or more
// elements, continuing to pull from elemDepth's cursors while the
// representative cursor's next triple still belongs to this list instance.
func assembleList(f *parquetcol.Field, cursors []*leafCursor, elemDepth int) (*Node, error) {
	elemCursors := partition(cursors, elemDepth, f.Element)
	if len(elemCursors) == 0 {
		return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf(
			"dremel: list field %v has no columns under its element", f.Path())}
	}
	repr := elemCursors[0]
	node := &Node{Field: f}

	for i := 0; ; i++ {
		if repr.done() {
			break
		}
		t := repr.peek()
		if i == 0 {
			if t.def < f.MaxDefinitionLevel() {
				for _, c := range elemCursors {
					c.pos++
				}
				return &Node{Field: f, Null: true}, nil
			}
		} else if t.rep < f.MaxRepetitionLevel() {
			break
		}
		item, err := assembleField(f.Element, elemCursors, elemDepth)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
	return node, nil
}

// assembleMap mirrors assembleList, pairing each element occurrence's key
// and value children into one Entry instead of a single Items node.
func assembleMap(f *parquetcol.Field, cursors []*leafCursor, elemDepth int) (*Node, error) {
	keyCursors := partition(cursors, elemDepth, f.Key)
	valueCursors := partition(cursors, elemDepth, f.Value)
	if len(keyCursors) == 0 {
		return nil, &parquetcol.Error{Kind: parquetcol.SchemaAssignConflict, Err: fmt.Errorf(
			"dremel: map field %v has no columns under its key", f.Path())}
	}
	repr := keyCursors[0]
	node := &Node{Field: f}

	for i := 0; ; i++ {
		if repr.done() {
			break
		}
		t := repr.peek()
		if i == 0 {
			if t.def < f.MaxDefinitionLevel() {
				for _, c := range keyCursors {
					c.pos++
				}
				for _, c := range valueCursors {
					c.pos++
				}
				return &Node{Field: f, Null: true}, nil
			}
		} else if t.rep < f.MaxRepetitionLevel() {
			break
		}
		key, err := assembleField(f.Key, keyCursors, elemDepth)
		if err != nil {
			return nil, err
		}
		var value *Node
		if len(valueCursors) > 0 {
			value, err = assembleField(f.Value, valueCursors, elemDepth)
			if err != nil {
				return nil, err
			}
		}
		node.Entries = append(node.Entries, Entry{Key: key, Value: value})
	}
	return node, nil
}
