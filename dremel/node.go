// Package dremel rebuilds nested records from the flat per-leaf
// (values, definition levels, repetition levels) triples a column chunk
// reader produces, the inverse of the shredding a column chunk writer does.
package dremel

import "github.com/shredcol/parquetcol"

// Node is one reconstructed value in a record tree. Which fields are
// meaningful depends on Field.Kind: DataKind nodes carry Value, StructKind
// carries Fields, ListKind carries Items, MapKind carries Entries. Null
// reports an absent optional/repeated ancestor; a null node's other fields
// are zero.
type Node struct {
	Field   *parquetcol.Field
	Null    bool
	Value   parquetcol.Value
	Fields  map[string]*Node
	Items   []*Node
	Entries []Entry
}

// Entry is one key/value pair of an assembled MapKind node.
type Entry struct {
	Key   *Node
	Value *Node
}

// Interface converts n into plain Go values suitable for printing or JSON
// encoding: structs become map[string]interface{}, lists become []interface{},
// map entries become a []interface{} of two-element [key, value] pairs (map
// keys in Parquet need not be comparable Go values once converted, e.g. a
// struct key), and leaves become whatever scalar fmt.Stringer-free type
// their physical kind holds. A null node converts to nil at any depth.
func (n *Node) Interface() interface{} {
	if n == nil || n.Null {
		return nil
	}
	switch n.Field.Kind {
	case parquetcol.DataKind:
		return scalarInterface(n.Value)

	case parquetcol.StructKind:
		out := make(map[string]interface{}, len(n.Fields))
		for name, child := range n.Fields {
			out[name] = child.Interface()
		}
		return out

	case parquetcol.ListKind:
		out := make([]interface{}, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out

	case parquetcol.MapKind:
		out := make([]interface{}, len(n.Entries))
		for i, e := range n.Entries {
			out[i] = [2]interface{}{e.Key.Interface(), e.Value.Interface()}
		}
		return out

	default:
		return nil
	}
}

func scalarInterface(v parquetcol.Value) interface{} {
	switch v.Kind {
	case parquetcol.Boolean:
		return v.Boolean()
	case parquetcol.Int32:
		return v.Int32()
	case parquetcol.Int64:
		return v.Int64()
	case parquetcol.Int96:
		return v.Int96()
	case parquetcol.Float:
		return v.Float()
	case parquetcol.Double:
		return v.Double()
	case parquetcol.ByteArray, parquetcol.FixedLenByteArray:
		return v.ByteArray()
	default:
		return nil
	}
}
