// Package pool provides a process-wide pool of scratch byte buffers for
// page-at-a-time work. No package in this module imports it: the column
// chunk reader and writer allocate fresh slices for each page, including
// decompression output.
//
// It generalizes the buffer-pooling pattern compress.Compressor/
// compress.Decompressor use around sync.Pool-held codec Reader/Writer
// values to the page-level scratch buffers the rest of this module needs
// (raw page bytes, decompressed page bytes), which have nothing to do
// with a specific compression codec.
package pool

import "sync"

var buffers sync.Pool

// GetBytes returns a scratch []byte with at least the given capacity,
// either from the pool or freshly allocated.
func GetBytes(capacity int) []byte {
	if b, ok := buffers.Get().([]byte); ok {
		if cap(b) >= capacity {
			return b[:0]
		}
		PutBytes(b)
	}
	return make([]byte, 0, capacity)
}

// PutBytes returns b to the pool for reuse by a future GetBytes call.
func PutBytes(b []byte) {
	buffers.Put(b[:0])
}
