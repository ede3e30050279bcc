package tiling_test

import (
	"testing"

	"github.com/eak1mov/go-hypertiles/tiling"
)

func TestFormatAddress(t *testing.T) {
	for _, tc := range []struct {
		Addr tiling.Address
		Want string
	}{
		{Addr: nil, Want: "O"},
		{Addr: tiling.Address{}, Want: "O"},
		{Addr: tiling.Address{0}, Want: "0"},
		{Addr: tiling.Address{0, 0, 0, 0, 2}, Want: "00002"},
		{Addr: tiling.Address{7, 3, 1}, Want: "731"},
		{Addr: tiling.Address{1, 2, 3, 4, 5, 6, 7, 0}, Want: "..45670"},
	} {
		if got := tiling.FormatAddress(tc.Addr); got != tc.Want {
			t.Errorf("FormatAddress(%v) = %q, want = %q", []uint8(tc.Addr), got, tc.Want)
		}
		if got := tc.Addr.String(); got != tc.Want {
			t.Errorf("Address(%v).String() = %q, want = %q", []uint8(tc.Addr), got, tc.Want)
		}
	}
}

func TestAddressChild(t *testing.T) {
	parent := make(tiling.Address, 2, 8)
	a := parent.Child(3)
	b := parent.Child(4)
	if a.String() != "003" || b.String() != "004" {
		t.Errorf("Child() = %v, %v, want = 003, 004", a, b)
	}
	if len(parent) != 2 {
		t.Errorf("Child() modified parent: %v", parent)
	}
}
