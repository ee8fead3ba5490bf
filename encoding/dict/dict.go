// Package dict identifies the PLAIN_DICTIONARY encoding, the deprecated
// predecessor to RLE_DICTIONARY.
//
// The two encodings are identical on the wire: a dictionary page written
// with PLAIN, followed by a data page of RLE-hybrid-encoded indices into
// it. Parquet kept them as separate enum values only because the
// PLAIN_DICTIONARY dictionary page header once used a different thrift
// field than DICTIONARY_PAGE's. This core's rle package already implements
// the index stream (EncodeIndices/DecodeIndices); this package exists so
// callers can distinguish which on-wire Encoding value to record in a
// column chunk's metadata.
package dict

import "github.com/shredcol/parquetcol/format"

// Encoding identifies the PLAIN_DICTIONARY encoding for callers that select
// a codec by its format.Encoding value.
type Encoding struct{}

func (e *Encoding) Encoding() format.Encoding { return format.PlainDictionary }

func (e *Encoding) String() string { return "PLAIN_DICTIONARY" }
