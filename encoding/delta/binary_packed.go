// Package delta implements the DELTA_BINARY_PACKED parquet encoding used
// for INT32 and INT64 columns.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#delta-encoding-delta_binary_packed--5
//
// Values are split into blocks of blockSize values, each block split again
// into numMiniBlocks mini-blocks. Every value is replaced by the delta from
// its predecessor (the very first value is stored verbatim in the header);
// each mini-block then stores its deltas, each offset by the block's
// minimum delta, bit-packed at the smallest width that fits the
// mini-block's largest offset delta.
//
// This package only implements encode/decode for whole in-memory slices; it
// does not expose a streaming Reader/Writer since every caller in this core
// already holds a page's full value buffer before encoding or after
// decoding it.
package delta

import (
	"fmt"
	"io"

	"github.com/shredcol/parquetcol/internal/bits"
)

const (
	blockSize32     = 128
	numMiniBlocks32 = 4
	miniBlockSize32 = blockSize32 / numMiniBlocks32
)

// EncodeInt32 appends the DELTA_BINARY_PACKED encoding of src to dst.
func EncodeInt32(dst []byte, src []int32) []byte {
	firstValue := int32(0)
	if len(src) > 0 {
		firstValue = src[0]
	}
	dst = appendHeader(dst, blockSize32, numMiniBlocks32, len(src), int64(firstValue))
	if len(src) < 2 {
		return dst
	}

	lastValue := firstValue
	block := make([]int64, blockSize32)

	for i := 1; i < len(src); {
		n := minInt(len(block), len(src)-i)
		i += n
		deltas := block[:n]

		for j := range deltas {
			v := int64(src[i-n+j])
			deltas[j] = v - lastValue
			lastValue = v
		}

		dst = encodeBlock(dst, deltas, numMiniBlocks32, miniBlockSize32)
	}

	return dst
}

// DecodeInt32 decodes a DELTA_BINARY_PACKED stream from src, appending the
// decoded values to dst.
func DecodeInt32(dst []int32, src []byte) ([]int32, error) {
	blockSize, numMiniBlocks, totalValues, firstValue, rest, err := decodeHeader(src)
	if err != nil {
		return dst, err
	}
	if totalValues == 0 {
		return dst, nil
	}
	dst = append(dst, int32(firstValue))
	if totalValues == 1 {
		return dst, nil
	}

	lastValue := firstValue
	remaining := totalValues - 1
	miniBlockSize := blockSize / numMiniBlocks

	for remaining > 0 {
		block, n, next, err := decodeBlock(rest, blockSize, numMiniBlocks, miniBlockSize, remaining)
		if err != nil {
			return dst, err
		}
		rest = next

		block[0] += lastValue
		for i := 1; i < n; i++ {
			block[i] += block[i-1]
		}
		lastValue = block[n-1]

		for i := 0; i < n; i++ {
			dst = append(dst, int32(block[i]))
		}
		remaining -= n
	}

	return dst, nil
}

// EncodeInt64 appends the DELTA_BINARY_PACKED encoding of src to dst.
func EncodeInt64(dst []byte, src []int64) []byte {
	firstValue := int64(0)
	if len(src) > 0 {
		firstValue = src[0]
	}
	dst = appendHeader(dst, blockSize32, numMiniBlocks32, len(src), firstValue)
	if len(src) < 2 {
		return dst
	}

	lastValue := firstValue
	block := make([]int64, blockSize32)

	for i := 1; i < len(src); {
		n := copy(block, src[i:])
		i += n
		deltas := block[:n]

		for j := range deltas {
			v := src[i-n+j]
			deltas[j] = v - lastValue
			lastValue = v
		}

		dst = encodeBlock(dst, deltas, numMiniBlocks32, miniBlockSize32)
	}

	return dst
}

// DecodeInt64 decodes a DELTA_BINARY_PACKED stream from src, appending the
// decoded values to dst.
func DecodeInt64(dst []int64, src []byte) ([]int64, error) {
	blockSize, numMiniBlocks, totalValues, firstValue, rest, err := decodeHeader(src)
	if err != nil {
		return dst, err
	}
	if totalValues == 0 {
		return dst, nil
	}
	dst = append(dst, firstValue)
	if totalValues == 1 {
		return dst, nil
	}

	lastValue := firstValue
	remaining := totalValues - 1
	miniBlockSize := blockSize / numMiniBlocks

	for remaining > 0 {
		block, n, next, err := decodeBlock(rest, blockSize, numMiniBlocks, miniBlockSize, remaining)
		if err != nil {
			return dst, err
		}
		rest = next

		block[0] += lastValue
		for i := 1; i < n; i++ {
			block[i] += block[i-1]
		}
		lastValue = block[n-1]

		dst = append(dst, block[:n]...)
		remaining -= n
	}

	return dst, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func appendHeader(dst []byte, blockSize, numMiniBlocks, totalValues int, firstValue int64) []byte {
	dst = bits.AppendUvarint(dst, uint64(blockSize))
	dst = bits.AppendUvarint(dst, uint64(numMiniBlocks))
	dst = bits.AppendUvarint(dst, uint64(totalValues))
	dst = appendZigZagVarint(dst, firstValue)
	return dst
}

func decodeHeader(src []byte) (blockSize, numMiniBlocks, totalValues int, firstValue int64, rest []byte, err error) {
	u, n, err := bits.Uvarint(src)
	if err != nil {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: reading block size: %w", err)
	}
	blockSize = int(u)
	src = src[n:]

	u, n, err = bits.Uvarint(src)
	if err != nil {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: reading mini block count: %w", err)
	}
	numMiniBlocks = int(u)
	src = src[n:]

	u, n, err = bits.Uvarint(src)
	if err != nil {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: reading value count: %w", err)
	}
	totalValues = int(u)
	src = src[n:]

	firstValue, n, err = readZigZagVarint(src)
	if err != nil {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: reading first value: %w", err)
	}
	src = src[n:]

	if numMiniBlocks <= 0 {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: invalid mini block count %d", numMiniBlocks)
	}
	if blockSize <= 0 || blockSize%128 != 0 {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: invalid block size %d, not a multiple of 128", blockSize)
	}
	if miniBlockSize := blockSize / numMiniBlocks; miniBlockSize <= 0 || miniBlockSize%32 != 0 {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: invalid mini block size %d, not a multiple of 32", miniBlockSize)
	}
	if totalValues < 0 {
		return 0, 0, 0, 0, nil, fmt.Errorf("delta: negative value count %d", totalValues)
	}
	return blockSize, numMiniBlocks, totalValues, firstValue, src, nil
}

// encodeBlock appends one block's minimum delta, its mini-blocks' bit
// widths, and the bit-packed mini-blocks themselves, zero-padding deltas
// out to a full block so every mini-block is evenly sized.
func encodeBlock(dst []byte, deltas []int64, numMiniBlocks, miniBlockSize int) []byte {
	full := make([]int64, numMiniBlocks*miniBlockSize)
	copy(full, deltas)

	minDelta := full[0]
	for _, v := range full[:len(deltas)] {
		if v < minDelta {
			minDelta = v
		}
	}
	for i := range full {
		full[i] -= minDelta
	}

	bitWidths := make([]byte, numMiniBlocks)
	packed := make([][]byte, numMiniBlocks)

	for i := 0; i < numMiniBlocks; i++ {
		miniBlock := full[i*miniBlockSize : (i+1)*miniBlockSize]
		width := maxBitLen64(miniBlock)
		bitWidths[i] = byte(width)
		packed[i] = packInt64(miniBlock, width)
	}

	dst = appendZigZagVarint(dst, minDelta)
	dst = append(dst, bitWidths...)
	for _, p := range packed {
		dst = append(dst, p...)
	}
	return dst
}

func decodeBlock(src []byte, blockSize, numMiniBlocks, miniBlockSize, remaining int) (block []int64, n int, rest []byte, err error) {
	minDelta, consumed, err := readZigZagVarint(src)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("delta: reading min delta: %w", err)
	}
	src = src[consumed:]

	if len(src) < numMiniBlocks {
		return nil, 0, nil, fmt.Errorf("delta: reading bit widths: %w", io.ErrUnexpectedEOF)
	}
	bitWidths := src[:numMiniBlocks]
	src = src[numMiniBlocks:]

	values := make([]int64, 0, blockSize)
	for _, w := range bitWidths {
		packedLen := (miniBlockSize * int(w)) / 8
		if len(src) < packedLen {
			return nil, 0, nil, fmt.Errorf("delta: reading mini block: %w", io.ErrUnexpectedEOF)
		}
		values = append(values, unpackInt64(src[:packedLen], int(w), miniBlockSize)...)
		src = src[packedLen:]
	}

	for i := range values {
		values[i] += minDelta
	}

	n = len(values)
	if n > remaining {
		n = remaining
	}
	return values, n, src, nil
}

func maxBitLen64(data []int64) int {
	max := 0
	for _, v := range data {
		if n := bitLen64(uint64(v)); n > max {
			max = n
		}
	}
	return max
}

func bitLen64(v uint64) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}

func packInt64(values []int64, bitWidth int) []byte {
	if bitWidth == 0 {
		return nil
	}
	out := make([]byte, (len(values)*bitWidth+7)/8)
	var acc uint64
	var accBits uint
	pos := 0

	for _, v := range values {
		acc |= (uint64(v) & ((1 << uint(bitWidth)) - 1)) << accBits
		accBits += uint(bitWidth)
		for accBits >= 8 {
			out[pos] = byte(acc)
			pos++
			acc >>= 8
			accBits -= 8
		}
	}
	if accBits > 0 {
		out[pos] = byte(acc)
	}
	return out
}

func unpackInt64(packed []byte, bitWidth, count int) []int64 {
	values := make([]int64, count)
	if bitWidth == 0 {
		return values
	}

	bitMask := uint64(1<<uint(bitWidth)) - 1
	var acc uint64
	var accBits uint
	pos := 0

	for i := 0; i < count; i++ {
		for accBits < uint(bitWidth) {
			acc |= uint64(packed[pos]) << accBits
			accBits += 8
			pos++
		}
		values[i] = int64(acc & bitMask)
		acc >>= uint(bitWidth)
		accBits -= uint(bitWidth)
	}
	return values
}

func appendZigZagVarint(dst []byte, v int64) []byte {
	u := uint64((v << 1) ^ (v >> 63))
	return bits.AppendUvarint64(dst, u)
}

func readZigZagVarint(src []byte) (int64, int, error) {
	u, n, err := bits.Uvarint64(src)
	if err != nil {
		return 0, 0, err
	}
	v := int64(u>>1) ^ -int64(u&1)
	return v, n, nil
}
