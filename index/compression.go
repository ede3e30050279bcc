package index

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

type Compression uint8

const (
	CompressionNone Compression = 0x0
	CompressionGzip Compression = 0x1
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

func detectCompression(data []byte) Compression {
	if bytes.HasPrefix(data, gzipMagic) {
		return CompressionGzip
	}
	return CompressionNone
}

func compressWriter(w io.Writer, compression Compression) (io.WriteCloser, error) {
	switch compression {
	case CompressionNone:
		return nopCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	default:
		return nil, fmt.Errorf("compression not supported (%v)", compression)
	}
}

func decompress(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone {
		return data, nil
	}

	if compression != CompressionGzip {
		return nil, fmt.Errorf("compression not supported (%v)", compression)
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	defer reader.Close()

	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return result, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
