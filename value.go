package parquetcol

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/shredcol/parquetcol/deprecated"
)

// Kind identifies which field of Value holds meaningful data.
type Kind int8

const (
	// Null is the zero value of Kind: an absent optional value.
	Null Kind = iota
	Boolean
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
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
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// Value is a small tagged union over the physical types Parquet supports,
// plus DefinitionLevel/RepetitionLevel fields. The column chunk reader does
// not fill those fields in: a DataColumn keeps its levels in its own
// DefLevels/RepLevels slices, and values it returns carry zero levels.
// Unlike the teacher's value.go, Value holds its scalar
// payload in plain typed fields rather than an unsafe.Pointer/uintptr pair:
// this core never bridges a Value to an arbitrary Go struct field by
// reflection, so there is no byte-layout to preserve and no unsafe needed.
//
// The zero Value is Null.
type Value struct {
	Kind            Kind
	boolean         bool
	i32             int32
	i64             int64
	i96             deprecated.Int96
	f32             float32
	f64             float64
	bytes           []byte
	DefinitionLevel int
	RepetitionLevel int
}

func (v Value) IsNull() bool { return v.Kind == Null }

func BooleanValue(x bool) Value           { return Value{Kind: Boolean, boolean: x} }
func Int32Value(x int32) Value            { return Value{Kind: Int32, i32: x} }
func Int64Value(x int64) Value            { return Value{Kind: Int64, i64: x} }
func Int96Value(x deprecated.Int96) Value { return Value{Kind: Int96, i96: x} }
func FloatValue(x float32) Value          { return Value{Kind: Float, f32: x} }
func DoubleValue(x float64) Value         { return Value{Kind: Double, f64: x} }

// ByteArrayValue constructs a BYTE_ARRAY value referencing b without
// copying it; callers must not mutate b afterwards.
func ByteArrayValue(b []byte) Value { return Value{Kind: ByteArray, bytes: b} }

// FixedLenByteArrayValue constructs a FIXED_LEN_BYTE_ARRAY value
// referencing b without copying it.
func FixedLenByteArrayValue(b []byte) Value { return Value{Kind: FixedLenByteArray, bytes: b} }

// UUIDValue constructs the FIXED_LEN_BYTE_ARRAY(16) value Parquet's UUID
// logical type uses to store id. id is passed by value, so the returned
// Value's bytes are independent of whatever uuid.UUID the caller holds.
func UUIDValue(id uuid.UUID) Value {
	return Value{Kind: FixedLenByteArray, bytes: id[:]}
}

func (v Value) Boolean() bool           { return v.boolean }
func (v Value) Int32() int32            { return v.i32 }
func (v Value) Int64() int64            { return v.i64 }
func (v Value) Int96() deprecated.Int96 { return v.i96 }
func (v Value) Float() float32          { return v.f32 }
func (v Value) Double() float64         { return v.f64 }
func (v Value) ByteArray() []byte       { return v.bytes }

// UUID interprets v's bytes as a 16-byte UUID logical-type value. It
// panics if v does not hold exactly 16 bytes.
func (v Value) UUID() uuid.UUID {
	id, err := uuid.FromBytes(v.bytes)
	if err != nil {
		panic("parquet: value is not a 16-byte UUID: " + err.Error())
	}
	return id
}

// WithLevels returns a copy of v carrying the given definition/repetition
// levels. The Dremel assembler and the column writer do not call it; they
// work from a DataColumn's level slices.
func (v Value) WithLevels(definitionLevel, repetitionLevel int) Value {
	v.DefinitionLevel = definitionLevel
	v.RepetitionLevel = repetitionLevel
	return v
}

// String renders v for debugging; it is not a wire format.
func (v Value) String() string {
	switch v.Kind {
	case Null:
		return "null"
	case Boolean:
		return fmt.Sprintf("%t", v.boolean)
	case Int32:
		return fmt.Sprintf("%d", v.i32)
	case Int64:
		return fmt.Sprintf("%d", v.i64)
	case Int96:
		return fmt.Sprintf("%v", v.i96)
	case Float:
		return fmt.Sprintf("%g", math.Float32frombits(math.Float32bits(v.f32)))
	case Double:
		return fmt.Sprintf("%g", v.f64)
	case ByteArray, FixedLenByteArray:
		return fmt.Sprintf("%q", v.bytes)
	default:
		return "?"
	}
}
