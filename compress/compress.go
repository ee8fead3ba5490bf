// Package compress provides the generic APIs implemented by parquet compression
// codecs.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/shredcol/parquetcol/format"
)

// The Codec interface represents parquet compression codecs implemented by the
// compress sub-packages.
//
// Codec values are stateless and safe to use concurrently from multiple
// goroutines; the Reader and Writer values they construct are not, which is
// why column readers and writers pool them behind a Compressor/Decompressor
// rather than sharing one across goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Returns the code of the compression codec in the parquet format.
	CompressionCodec() format.CompressionCodec

	// NewReader constructs a Reader that decompresses from r.
	NewReader(r io.Reader) (Reader, error)

	// NewWriter constructs a Writer that compresses to w.
	NewWriter(w io.Writer) (Writer, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

type Writer interface {
	io.WriteCloser
	Reset(io.Writer) error
}

type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		w.Reset(output)
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

// EncodeWith compresses src with codec, writing the result into dst's
// storage from index 0 (existing contents of dst are overwritten). It
// pools the Writer it constructs on c for reuse across calls.
func (c *Compressor) EncodeWith(codec Codec, dst, src []byte) ([]byte, error) {
	return c.Encode(dst, src, codec.NewWriter)
}

type Decompressor struct {
	readers sync.Pool
}

// DecodeWith decompresses src with codec, writing the result into dst's
// storage from index 0 (existing contents of dst are overwritten). It
// pools the Reader it constructs on d for reuse across calls.
func (d *Decompressor) DecodeWith(codec Codec, dst, src []byte) ([]byte, error) {
	return d.Decode(dst, src, codec.NewReader)
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}
