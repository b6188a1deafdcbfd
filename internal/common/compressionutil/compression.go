// Package compression wraps process document streams in the compression
// formats accepted for exported bundles.
package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
)

// Supported compression formats, named by file extension
const (
	FormatNone  = ""
	FormatGZIP  = "gz"
	FormatBZIP2 = "bz2"
	FormatXZ    = "xz"
)

// IsSupported reports whether format names a known compression
func IsSupported(format string) bool {
	switch format {
	case FormatNone, FormatGZIP, FormatBZIP2, FormatXZ:
		return true
	}
	return false
}

// NewReader wraps r with a decompressor for format. FormatNone passes r through.
func NewReader(format string, r io.Reader) (io.ReadCloser, error) {
	switch format {
	case FormatNone:
		return io.NopCloser(r), nil
	case FormatGZIP:
		return newGZIPReader(r)
	case FormatBZIP2:
		return newBZIP2Reader(r)
	case FormatXZ:
		return newXZReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedCompression, format)
	}
}

// NewWriter wraps w with a compressor for format. FormatNone passes w through.
// The returned writer must be closed to flush the compressed stream.
func NewWriter(format string, w io.Writer) (io.WriteCloser, error) {
	switch format {
	case FormatNone:
		return nopWriteCloser{w}, nil
	case FormatGZIP:
		return newGZIPWriter(w)
	case FormatBZIP2:
		return newBZIP2Writer(w)
	case FormatXZ:
		return newXZWriter(w)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedCompression, format)
	}
}

// Decompress returns the decompressed contents of data
func Decompress(format string, data []byte) ([]byte, error) {
	reader, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrDecompressionFailed, err.Error())
	}
	return out, nil
}

// Compress returns data compressed in format
func Compress(format string, data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := NewWriter(format, &buffer)
	if err != nil {
		return nil, err
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("%w: %s", errors.ErrCompressionFailed, err.Error())
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrCompressionFailed, err.Error())
	}
	return buffer.Bytes(), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
