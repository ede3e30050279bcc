package tile_test

import (
	"errors"
	"maps"
	"testing"

	"github.com/eak1mov/go-hypertiles/tile"
	"github.com/eak1mov/go-hypertiles/tiling"
	"github.com/google/go-cmp/cmp"
)

// memorySnapshot is an in-memory tile.Writer and tile.Visitor.
type memorySnapshot struct {
	records   []tile.Record
	finalized bool
}

func (m *memorySnapshot) WriteTile(record tile.Record) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memorySnapshot) Finalize() error {
	m.finalized = true
	return nil
}

func (m *memorySnapshot) VisitTiles(visitor func(tile.Record) error) error {
	for _, r := range m.records {
		if err := visitor(r); err != nil {
			return err
		}
	}
	return nil
}

func TestWriteStateAddresses(t *testing.T) {
	s := tiling.New(tiling.MustConfig(7, 3))
	s.Expand(3)
	s.Tile(4).ExtraElevation = 1.5

	snapshot := &memorySnapshot{}
	if err := tile.WriteState(snapshot, s); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}
	if !snapshot.finalized {
		t.Errorf("WriteState did not finalize the writer")
	}

	records, err := tile.ReadAll(snapshot)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if got, want := len(records), s.Len(); got != want {
		t.Fatalf("len(records) = %v, want = %v", got, want)
	}
	if got := records[4].Elevation; got != 1.5 {
		t.Errorf("records[4].Elevation = %v, want = 1.5", got)
	}

	addrs, err := tile.Addresses(records)
	if err != nil {
		t.Fatalf("Addresses failed: %v", err)
	}
	want := make([]tiling.Address, 0, s.Len())
	for _, tl := range s.Tiles() {
		want = append(want, tl.Address)
	}
	if diff := cmp.Diff(want, addrs); diff != "" {
		t.Errorf("Addresses mismatch (-want+got):\n%v", diff)
	}
}

func TestIterTiles(t *testing.T) {
	s := tiling.New(tiling.MustConfig(8, 3))
	s.Expand(1)

	snapshot := &memorySnapshot{}
	if err := tile.WriteState(snapshot, s); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}

	got := maps.Collect(tile.IterTiles(snapshot))
	if len(got) != 9 {
		t.Fatalf("IterTiles yielded %v records, want = 9", len(got))
	}
	for idx, r := range got {
		if diff := cmp.Diff(tile.FromState(s, idx), r); diff != "" {
			t.Errorf("record %d mismatch (-want+got):\n%v", idx, diff)
		}
	}

	count := 0
	for range tile.IterTiles(snapshot) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("early break visited %v records, want = 3", count)
	}
}

func TestAddressesErrors(t *testing.T) {
	for _, tc := range []struct {
		Name    string
		Records []tile.Record
	}{
		{Name: "ForwardParent", Records: []tile.Record{
			{Index: 0, Parent: -1},
			{Index: 1, Parent: 2, Depth: 1},
			{Index: 2, Parent: 0, Depth: 1},
		}},
		{Name: "Unsorted", Records: []tile.Record{
			{Index: 1, Parent: -1},
		}},
		{Name: "Depth", Records: []tile.Record{
			{Index: 0, Parent: -1},
			{Index: 1, Parent: 0, Depth: 3},
		}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := tile.Addresses(tc.Records)
			if !errors.Is(err, tile.ErrBrokenParent) {
				t.Errorf("Addresses() error = %v, want ErrBrokenParent", err)
			}
		})
	}
}
