package parquetcol

import "fmt"

// ErrorKind classifies the ways a parquet operation can fail, so callers
// can branch on the failure category (is this bad input data, or a
// request the reader simply doesn't support yet?) without depending on
// package-private sentinel errors.
type ErrorKind int

const (
	// Malformed means the bytes read did not form a valid parquet
	// structure (bad magic, truncated page, invalid thrift, ...).
	Malformed ErrorKind = iota
	// EncodingUnsupported means the data uses a recognized but
	// unimplemented encoding or compression codec.
	EncodingUnsupported
	// SchemaAssignConflict means a value couldn't be routed to the field
	// the caller asked for (path not found, kind mismatch).
	SchemaAssignConflict
	// LevelMismatch means Dremel assembly could not line the columns up:
	// they disagree on the row count, or a column runs out of level slots
	// or has slots left over.
	LevelMismatch
	// TypeMismatch means a value's Kind didn't match its field's
	// physical type.
	TypeMismatch
	// IoFailure wraps an error returned by the underlying io.ReaderAt/
	// io.Writer.
	IoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case EncodingUnsupported:
		return "encoding unsupported"
	case SchemaAssignConflict:
		return "schema assign conflict"
	case LevelMismatch:
		return "level mismatch"
	case TypeMismatch:
		return "type mismatch"
	case IoFailure:
		return "io failure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the typed error the reader, the column chunk writer and the
// Dremel assembler return on failure, so that callers can declare
// var e *parquetcol.Error, call errors.As(err, &e) and switch on e.Kind
// instead of matching error strings. SchemaFromElements and the encoding
// and compress sub-packages return plain wrapped errors instead.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "parquet: " + e.Kind.String()
	}
	return fmt.Sprintf("parquet: %s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// errorf builds an *Error of the given kind, wrapping a formatted message.
func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}
