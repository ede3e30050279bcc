package store

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/eak1mov/go-hypertiles/tile"
	"github.com/eak1mov/go-hypertiles/tiling"
)

// Writer implements tile.Writer interface for SQLite snapshot files.
type Writer struct {
	db     *sql.DB
	stmt   *sql.Stmt
	logger *slog.Logger
}

type writerConfig struct {
	Metadata map[string]string
	Logger   *slog.Logger
}

type WriterOption func(*writerConfig)

func WithMetadata(metadata map[string]string) WriterOption {
	return func(c *writerConfig) { c.Metadata = metadata }
}

func WithLogger(logger *slog.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates a new Writer for writing to a snapshot file.
// It applies given options and initializes database for writing tiles.
func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			tile_index INTEGER,
			parent INTEGER,
			direction INTEGER,
			depth INTEGER,
			cell INTEGER,
			a_re REAL,
			a_im REAL,
			b_re REAL,
			b_im REAL,
			elevation REAL
		);
	`)
	if err != nil {
		return nil, err
	}

	for k, v := range config.Metadata {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", k, v)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := db.Prepare(`INSERT INTO tiles
		(tile_index, parent, direction, depth, cell, a_re, a_im, b_re, b_im, elevation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}

	return &Writer{db, stmt, config.Logger}, nil
}

func (w *Writer) Close() error {
	return errors.Join(w.stmt.Close(), w.db.Close())
}

func (w *Writer) WriteTile(record tile.Record) error {
	a, b := record.Transform.A, record.Transform.B
	cell := int64(tiling.SpatialKey(record.Center()))

	_, err := w.stmt.Exec(
		record.Index, record.Parent, record.Direction, record.Depth, cell,
		real(a), imag(a), real(b), imag(b), float64(record.Elevation),
	)
	return err
}

func (w *Writer) Finalize() error {
	w.logger.Debug("hypertiles: creating index")
	_, err := w.db.Exec(`
		CREATE UNIQUE INDEX tile_index ON tiles (tile_index);
		CREATE INDEX tile_cell ON tiles (cell);
	`)

	w.logger.Debug("hypertiles: done!")
	return err
}
