package compression

import (
	"compress/gzip"
	"io"
)

func newGZIPReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func newGZIPWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
