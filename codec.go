package parquetcol

import (
	"github.com/shredcol/parquetcol/compress"
	"github.com/shredcol/parquetcol/compress/brotli"
	"github.com/shredcol/parquetcol/compress/gzip"
	"github.com/shredcol/parquetcol/compress/lz4"
	"github.com/shredcol/parquetcol/compress/snappy"
	"github.com/shredcol/parquetcol/compress/uncompressed"
	"github.com/shredcol/parquetcol/compress/zstd"
	"github.com/shredcol/parquetcol/format"
)

// codecFor returns the compress.Codec implementing c, the root package's
// registry tying the format.CompressionCodec wire enum to the concrete
// subpackage that knows how to (de)compress it. It lives here rather than
// in the compress package itself because every subpackage imports compress
// for its Reader/Writer interfaces, and compress importing them back would
// be a cycle.
func codecFor(c format.CompressionCodec) (compress.Codec, error) {
	switch c {
	case format.Uncompressed:
		return &uncompressed.Codec{}, nil
	case format.Gzip:
		return &gzip.Codec{}, nil
	case format.Snappy:
		return &snappy.Codec{}, nil
	case format.Zstd:
		return &zstd.Codec{}, nil
	case format.Lz4Raw:
		return &lz4.Codec{}, nil
	case format.Brotli:
		return &brotli.Codec{}, nil
	default:
		return nil, errorf(EncodingUnsupported, "unsupported compression codec %s", c)
	}
}

var decompressor compress.Decompressor

// decompressPage decompresses src (compressedSize bytes) into a buffer at
// least uncompressedSize long, using codec. UNCOMPRESSED pages are a
// pass-through and decompressPage returns src unchanged rather than
// round-tripping through compress.Decompressor, since the uncompressed
// codec still allocates an io.Reader wrapper for no benefit.
func decompressPage(codec format.CompressionCodec, src []byte, uncompressedSize int) ([]byte, error) {
	if codec == format.Uncompressed {
		return src, nil
	}
	c, err := codecFor(codec)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, 0, uncompressedSize)
	out, err := decompressor.DecodeWith(c, dst, src)
	if err != nil {
		return nil, errorf(IoFailure, "decompressing page with codec %s: %w", codec, err)
	}
	return out, nil
}
