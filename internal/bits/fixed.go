package bits

import (
	"encoding/binary"
	"fmt"
)

// ReadUintLE reads an unsigned little-endian integer of the given byte
// width (0..4) from src. Width 0 always yields 0. Width 3 reads only the
// low 24 bits (the common "3-byte length" encoding Parquet uses for
// def/rep level widths between 17 and 24 bits).
//
// The value returned is always non-negative; callers that need dictionary
// indices or level values must treat it as such rather than reinterpreting
// it as a signed int32 (see spec §9 "ReadIntOnBytes" note).
func ReadUintLE(src []byte, width int) (uint32, error) {
	switch width {
	case 0:
		return 0, nil
	case 1:
		if len(src) < 1 {
			return 0, fmt.Errorf("fixed-width int: need 1 byte, have %d", len(src))
		}
		return uint32(src[0]), nil
	case 2:
		if len(src) < 2 {
			return 0, fmt.Errorf("fixed-width int: need 2 bytes, have %d", len(src))
		}
		return uint32(binary.LittleEndian.Uint16(src)), nil
	case 3:
		if len(src) < 3 {
			return 0, fmt.Errorf("fixed-width int: need 3 bytes, have %d", len(src))
		}
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16, nil
	case 4:
		if len(src) < 4 {
			return 0, fmt.Errorf("fixed-width int: need 4 bytes, have %d", len(src))
		}
		return binary.LittleEndian.Uint32(src), nil
	default:
		return 0, fmt.Errorf("fixed-width int: invalid byte width %d", width)
	}
}

// PutUintLE writes v to dst using `width` little-endian bytes (0..4),
// returning the number of bytes written. dst must have at least width bytes
// available.
func PutUintLE(dst []byte, v uint32, width int) (int, error) {
	switch width {
	case 0:
		return 0, nil
	case 1:
		dst[0] = byte(v)
		return 1, nil
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
		return 2, nil
	case 3:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		return 3, nil
	case 4:
		binary.LittleEndian.PutUint32(dst, v)
		return 4, nil
	default:
		return 0, fmt.Errorf("fixed-width int: invalid byte width %d", width)
	}
}

// ByteWidthForBitWidth returns ceil(bitWidth/8), the number of bytes needed
// to store a single fixed-width value of bitWidth bits, as used to frame
// RLE run values (spec §4.B).
func ByteWidthForBitWidth(bitWidth int) int {
	return ByteCount(uint(bitWidth))
}
