package parquetcol

const (
	DefaultPageBufferSize     = 1 * 1024 * 1024
	DefaultDataPageStatistics = false
	DefaultColumnBufferSize   = 1 * 1024 * 1024
	DefaultDataPageVersion    = 2
	DefaultCreatedBy          = "github.com/shredcol/parquetcol"
)

// ReaderConfig carries the options OpenReader accepts. The zero value is
// not valid; use NewReaderConfig.
type ReaderConfig struct {
	PageBufferSize int
}

// ReaderOption configures a ReaderConfig, in the style of the teacher's
// functional ReaderOption/ConfigureReader pair but expressed directly as a
// func(*ReaderConfig) rather than a single-method interface, since this
// core has no need for options that also validate themselves.
type ReaderOption func(*ReaderConfig)

// NewReaderConfig returns the default ReaderConfig with opts applied on
// top.
func NewReaderConfig(opts ...ReaderOption) *ReaderConfig {
	c := &ReaderConfig{PageBufferSize: DefaultPageBufferSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageBufferSize sets ReaderConfig.PageBufferSize. The column chunk reader
// does not read this setting: it buffers page reads with a fixed 4096-byte
// buffer.
func PageBufferSize(size int) ReaderOption {
	return func(c *ReaderConfig) { c.PageBufferSize = size }
}

// WriterConfig carries the options a ColumnChunkWriter accepts.
type WriterConfig struct {
	PageBufferSize     int
	ColumnBufferSize   int
	DataPageVersion    int
	DataPageStatistics bool
	CreatedBy          string
}

// WriterOption configures a WriterConfig.
type WriterOption func(*WriterConfig)

// NewWriterConfig returns the default WriterConfig with opts applied on
// top.
func NewWriterConfig(opts ...WriterOption) *WriterConfig {
	c := &WriterConfig{
		PageBufferSize:     DefaultPageBufferSize,
		ColumnBufferSize:   DefaultColumnBufferSize,
		DataPageVersion:    DefaultDataPageVersion,
		DataPageStatistics: DefaultDataPageStatistics,
		CreatedBy:          DefaultCreatedBy,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DataPageStatistics enables or disables writing min/max Statistics into
// every data page header, not just the column chunk's footer metadata.
func DataPageStatistics(enabled bool) WriterOption {
	return func(c *WriterConfig) { c.DataPageStatistics = enabled }
}

// ColumnBufferSize sets WriterConfig.ColumnBufferSize. ColumnChunkWriter
// does not read this setting: WriteColumn always emits the whole column as
// a single data page.
func ColumnBufferSize(size int) WriterOption {
	return func(c *WriterConfig) { c.ColumnBufferSize = size }
}
