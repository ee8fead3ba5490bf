// Package encoding provides the generic types shared by the parquet column
// encodings implemented in its sub-packages (rle, plain, dict).
package encoding

import (
	"fmt"

	"github.com/shredcol/parquetcol/format"
)

// Encoding is implemented by types identifying one of the column encodings
// defined by the Parquet format (PLAIN, RLE, RLE_DICTIONARY, ...).
//
// Encoding values are stateless and safe for concurrent use; the
// sub-packages encode and decode through plain slice-based functions.
type Encoding interface {
	fmt.Stringer

	// Encoding returns the on-wire code identifying this encoding.
	Encoding() format.Encoding
}

// Supported reports the encodings this core implements fully, as opposed to
// merely recognizing them (spec §4.D): PLAIN, RLE_DICTIONARY,
// PLAIN_DICTIONARY and DELTA_BINARY_PACKED for data page values, and RLE,
// which is decoded for definition/repetition levels only.
func Supported(e format.Encoding) bool {
	switch e {
	case format.Plain, format.RLE, format.RLEDictionary, format.PlainDictionary, format.DeltaBinaryPacked:
		return true
	default:
		return false
	}
}

// Recognized reports the full set of encodings this core knows the name and
// wire code of, including ones it reports EncodingUnsupported for.
func Recognized(e format.Encoding) bool {
	switch e {
	case format.Plain, format.RLE, format.RLEDictionary, format.PlainDictionary,
		format.DeltaBinaryPacked, format.DeltaByteArray, format.DeltaLengthByteArray,
		format.ByteStreamSplit:
		return true
	default:
		return false
	}
}
