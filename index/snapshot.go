package index

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/eak1mov/go-hypertiles/tile"
)

// Writer implements tile.Writer interface for index files.
// Records must be written in tile index order.
type Writer struct {
	file   *os.File
	buffer *bufio.Writer
	writer io.WriteCloser
}

type writerConfig struct {
	Compression Compression
}

type WriterOption func(*writerConfig)

// WithCompression compresses the whole file. Readers detect it automatically.
func WithCompression(compression Compression) WriterOption {
	return func(c *writerConfig) { c.Compression = compression }
}

func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{Compression: CompressionNone}
	for _, opt := range opts {
		opt(&config)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	buffer := bufio.NewWriter(file)
	writer, err := compressWriter(buffer, config.Compression)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &Writer{file: file, buffer: buffer, writer: writer}, nil
}

func (w *Writer) WriteTile(record tile.Record) error {
	return WriteAll([]Item{FromRecord(record)}, w.writer)
}

func (w *Writer) Finalize() error {
	return errors.Join(w.writer.Close(), w.buffer.Flush())
}

func (w *Writer) Close() error {
	return w.file.Close()
}

// Reader implements tile.Reader and tile.Visitor interfaces for index files.
type Reader struct {
	items []Item
}

// NewReader loads the whole index file into memory.
func NewReader(filePath string) (*Reader, error) {
	indexData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	indexData, err = decompress(indexData, detectCompression(indexData))
	if err != nil {
		return nil, err
	}
	items, err := ReadAll(indexData)
	if err != nil {
		return nil, err
	}
	return &Reader{items: items}, nil
}

func (r *Reader) ReadTile(index int) (tile.Record, bool, error) {
	if index < 0 || index >= len(r.items) {
		return tile.Record{}, false, nil
	}
	return r.items[index].Record(index), true, nil
}

func (r *Reader) VisitTiles(visitor func(tile.Record) error) error {
	for i, item := range r.items {
		if err := visitor(item.Record(i)); err != nil {
			return err
		}
	}
	return nil
}
