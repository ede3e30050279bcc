// Package tile provides common snapshot interfaces and types.
//
// A snapshot is a flat list of tile records exported from a tiling.State.
// Records reference their parent by index, so canonical addresses can be
// rebuilt without storing them.
package tile

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/tiling"
)

var ErrBrokenParent = errors.New("hypertiles: broken parent reference")

// Record is a single exported tile.
type Record struct {
	Index     int
	Parent    int // -1 for the origin tile
	Direction uint8
	Depth     int
	Transform poincare.Mobius
	Elevation float32
}

func (r Record) Center() complex128 {
	return r.Transform.Center()
}

// Writer defines an interface for writing tile records to a snapshot.
type Writer interface {
	// WriteTile writes a single record.
	WriteTile(record Record) error

	// Finalize completes the writing process: flushes buffers, writes indices.
	// It must be called before closing the Writer.
	Finalize() error
}

type Reader interface {
	// ReadTile reads a single record by tile index.
	// It returns false with no error if the snapshot has no such tile.
	ReadTile(index int) (Record, bool, error)
}

type Visitor interface {
	// VisitTiles visits all records in index order, calling the visitor for each.
	VisitTiles(visitor func(Record) error) error
}

// FromState converts tile idx of s into a record.
func FromState(s *tiling.State, idx int) Record {
	t := s.Tile(idx)
	return Record{
		Index:     idx,
		Parent:    t.Parent,
		Direction: t.Direction,
		Depth:     t.Depth,
		Transform: t.Transform,
		Elevation: t.ExtraElevation,
	}
}

// WriteState writes every tile of s in index order and finalizes w.
func WriteState(w Writer, s *tiling.State) error {
	for idx := range s.Tiles() {
		if err := w.WriteTile(FromState(s, idx)); err != nil {
			return err
		}
	}
	return w.Finalize()
}

// Addresses rebuilds canonical addresses from parent links. Records must be
// sorted by index and every parent must precede its children.
func Addresses(records []Record) ([]tiling.Address, error) {
	addrs := make([]tiling.Address, len(records))
	for i, r := range records {
		if r.Index != i {
			return nil, fmt.Errorf("%w: record %d has index %d", ErrBrokenParent, i, r.Index)
		}
		if r.Parent < 0 {
			addrs[i] = tiling.Address{}
			continue
		}
		if r.Parent >= i {
			return nil, fmt.Errorf("%w: tile %d has parent %d", ErrBrokenParent, i, r.Parent)
		}
		addrs[i] = addrs[r.Parent].Child(r.Direction)
		if len(addrs[i]) != r.Depth {
			return nil, fmt.Errorf("%w: tile %d has depth %d, address length %d", ErrBrokenParent, i, r.Depth, len(addrs[i]))
		}
	}
	return addrs, nil
}
