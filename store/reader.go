// Package store provides API for reading and writing tiling snapshots in SQLite files.
//
// Note: User must properly initialize the sqlite3 library generic driver
// (e.g. import _ "github.com/mattn/go-sqlite3") before using this package.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/tile"
	"github.com/eak1mov/go-hypertiles/tiling"
)

const selectColumns = "tile_index, parent, direction, depth, a_re, a_im, b_re, b_im, elevation"

// Reader implements tile.Reader and tile.Visitor interfaces for snapshot files.
type Reader struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// NewReader creates a new Reader for the given snapshot file path.
//
// The returned Reader must be closed after use to release database resources.
func NewReader(filePath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare("SELECT " + selectColumns + " FROM tiles WHERE tile_index = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Reader{db: db, stmt: stmt}, nil
}

func (r *Reader) Close() error {
	return errors.Join(r.stmt.Close(), r.db.Close())
}

func (r *Reader) ReadMetadata() (map[string]string, error) {
	metadata := make(map[string]string)

	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (tile.Record, error) {
	var record tile.Record
	var aRe, aIm, bRe, bIm, elevation float64
	err := row.Scan(&record.Index, &record.Parent, &record.Direction, &record.Depth,
		&aRe, &aIm, &bRe, &bIm, &elevation)
	if err != nil {
		return tile.Record{}, err
	}
	record.Transform = poincare.Mobius{A: complex(aRe, aIm), B: complex(bRe, bIm)}
	record.Elevation = float32(elevation)
	return record, nil
}

func (r *Reader) ReadTile(index int) (tile.Record, bool, error) {
	record, err := scanRecord(r.stmt.QueryRow(index))
	if errors.Is(err, sql.ErrNoRows) {
		return tile.Record{}, false, nil
	}
	if err != nil {
		return tile.Record{}, false, err
	}
	return record, true, nil
}

func (r *Reader) visitQuery(visitor func(tile.Record) error, query string, args ...any) error {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := visitor(record); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return err
	}

	return nil
}

func (r *Reader) VisitTiles(visitor func(tile.Record) error) error {
	return r.visitQuery(visitor, "SELECT "+selectColumns+" FROM tiles ORDER BY tile_index")
}

// FindCell returns the records whose center falls in the same dedup cell as pos.
func (r *Reader) FindCell(pos complex128) ([]tile.Record, error) {
	records := make([]tile.Record, 0, 1)
	err := r.visitQuery(func(record tile.Record) error {
		records = append(records, record)
		return nil
	}, "SELECT "+selectColumns+" FROM tiles WHERE cell = ? ORDER BY tile_index", int64(tiling.SpatialKey(pos)))
	if err != nil {
		return nil, err
	}
	return records, nil
}
