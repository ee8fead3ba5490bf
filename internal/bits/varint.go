package bits

import "fmt"

// MaxVarintLen32 is the maximum number of bytes produced by AppendUvarint for
// a value that fits in 32 bits.
const MaxVarintLen32 = 5

// AppendUvarint appends the unsigned LEB128 encoding of u to dst, using a
// continuation bit (0x80) on every byte except the last.
func AppendUvarint(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// Uvarint decodes an unsigned LEB128 varint from the front of src, returning
// the value, the number of bytes consumed, and an error if the stream ends
// before a terminating byte is found or more than maxVarintLen32 bytes are
// consumed while decoding a value meant to fit in 32 bits.
//
// This mirrors encoding/binary.Uvarint but enforces the stricter 32-bit
// bound the wire format requires for definition/repetition level lengths and
// dictionary indices (see spec §4.A): a well-formed stream never needs a 6th
// continuation byte to represent a uint32.
func Uvarint(src []byte) (value uint64, n int, err error) {
	var shift uint
	for i, b := range src {
		if i == MaxVarintLen32 {
			return 0, 0, fmt.Errorf("varint: more than %d bytes consumed without termination", MaxVarintLen32)
		}
		if b < 0x80 {
			value |= uint64(b) << shift
			return value, i + 1, nil
		}
		value |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, 0, fmt.Errorf("varint: unexpected end of input")
}

// MaxVarintLen64 is the maximum number of bytes produced by
// AppendUvarint64 for any uint64 value.
const MaxVarintLen64 = 10

// AppendUvarint64 appends the unsigned LEB128 encoding of u to dst. It
// produces the same bytes as AppendUvarint (up to MaxVarintLen64 of them);
// the separate name marks its use for DELTA_BINARY_PACKED headers and
// min-deltas, which carry zig-zag encoded int64s rather than the
// 32-bit-bounded lengths and indices AppendUvarint's other callers write.
func AppendUvarint64(dst []byte, u uint64) []byte {
	return AppendUvarint(dst, u)
}

// Uvarint64 decodes an unsigned LEB128 varint from the front of src,
// allowing up to MaxVarintLen64 bytes (see AppendUvarint64).
func Uvarint64(src []byte) (value uint64, n int, err error) {
	var shift uint
	for i, b := range src {
		if i == MaxVarintLen64 {
			return 0, 0, fmt.Errorf("varint: more than %d bytes consumed without termination", MaxVarintLen64)
		}
		if b < 0x80 {
			value |= uint64(b) << shift
			return value, i + 1, nil
		}
		value |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, 0, fmt.Errorf("varint: unexpected end of input")
}
