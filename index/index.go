// Package index provides a fixed-size binary record format for tiling snapshots.
package index

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/tile"
)

// Item represents a single tile in the index. Items are stored in tile index
// order, so the position of an item in the file is its tile index.
// It is designed to be easily portable to other languages and utilities.
type Item struct {
	Parent    int32
	Depth     uint16
	Direction uint8
	Parity    uint8
	Elevation float32
	ARe       float64
	AIm       float64
	BRe       float64
	BIm       float64
}

func FromRecord(r tile.Record) Item {
	return Item{
		Parent:    int32(r.Parent),
		Depth:     uint16(r.Depth),
		Direction: r.Direction,
		Parity:    uint8(r.Depth % 2),
		Elevation: r.Elevation,
		ARe:       real(r.Transform.A),
		AIm:       imag(r.Transform.A),
		BRe:       real(r.Transform.B),
		BIm:       imag(r.Transform.B),
	}
}

func (i Item) Record(index int) tile.Record {
	return tile.Record{
		Index:     index,
		Parent:    int(i.Parent),
		Direction: i.Direction,
		Depth:     int(i.Depth),
		Transform: poincare.Mobius{
			A: complex(i.ARe, i.AIm),
			B: complex(i.BRe, i.BIm),
		},
		Elevation: i.Elevation,
	}
}

func WriteAll(items []Item, writer io.Writer) error {
	return binary.Write(writer, binary.LittleEndian, items)
}

func ReadAll(indexData []byte) ([]Item, error) {
	count := len(indexData) / binary.Size(Item{})
	items := make([]Item, count)

	err := binary.Read(bytes.NewReader(indexData), binary.LittleEndian, items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
