package parquetcol

import (
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/shredcol/parquetcol/format"
)

// assertSchemaString compares got against want line by line, printing a
// unified diff (rather than a wall of mismatched text) when they differ.
func assertSchemaString(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	edits := myers.ComputeEdits(span.URIFromPath("want.txt"), want, got)
	diff := fmt.Sprint(gotextdiff.ToUnified("want.txt", "got.txt", want, edits))
	t.Errorf("schema mismatch:\n%s", diff)
}

func TestSchemaStringTree(t *testing.T) {
	root := StructField("row", Required,
		DataField("id", Required, format.Int64),
		DataField("name", Optional, format.ByteArray),
		ListField("tags", Repeated, DataField("element", Required, format.ByteArray)),
	)
	schema := NewSchema("row", root)

	want := `message row {
  required INT64 id;
  optional BYTE_ARRAY name;
  repeated list<element> tags {
    required BYTE_ARRAY element;
  }
}
`
	assertSchemaString(t, want, schema.String())
}
