package format

import (
	"io"

	"github.com/segmentio/encoding/thrift"
)

// DecodeFileMetaData parses the compact-protocol thrift encoding of a
// file's footer, as produced by EncodeFileMetaData or any conformant
// Parquet writer.
func DecodeFileMetaData(b []byte) (FileMetaData, error) {
	protocol := &thrift.CompactProtocol{}
	m := FileMetaData{}
	err := thrift.Unmarshal(protocol, b, &m)
	return m, err
}

// EncodeFileMetaData returns the compact-protocol thrift encoding of m.
func EncodeFileMetaData(m *FileMetaData) ([]byte, error) {
	protocol := &thrift.CompactProtocol{}
	return thrift.Marshal(protocol, m)
}

// DecodePageHeader parses the compact-protocol thrift encoding of a single
// page header from the front of b.
func DecodePageHeader(b []byte) (PageHeader, error) {
	protocol := &thrift.CompactProtocol{}
	h := PageHeader{}
	err := thrift.Unmarshal(protocol, b, &h)
	return h, err
}

// EncodePageHeader returns the compact-protocol thrift encoding of h.
func EncodePageHeader(h *PageHeader) ([]byte, error) {
	protocol := &thrift.CompactProtocol{}
	return thrift.Marshal(protocol, h)
}

// DecodePageHeaderFrom decodes one PageHeader from r, consuming exactly as
// many bytes as the compact-protocol struct needs and leaving r positioned
// at the start of the page's data. Unlike DecodePageHeader, this is the
// form a column chunk reader needs: page headers aren't length-prefixed on
// the wire, so the only way to find where one ends is to let the protocol
// decoder consume the stream itself.
func DecodePageHeaderFrom(r io.Reader) (PageHeader, error) {
	var protocol thrift.CompactProtocol
	var decoder thrift.Decoder
	decoder.Reset(protocol.NewReader(r))
	h := PageHeader{}
	err := decoder.Decode(&h)
	return h, err
}
