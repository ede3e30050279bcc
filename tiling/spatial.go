package tiling

import (
	"math"

	"github.com/google/hilbert"
)

// Tile centers are deduplicated on a fixed 1e-3 grid. The cell must absorb the
// drift of repeated compositions while staying finer than the gap between
// distinct centers at materialized depths. The grid does not adapt to depth:
// near the boundary distinct centers may share a cell.
const (
	spatialScale      = 1e3
	spatialGridSize   = 2048
	spatialGridOffset = spatialGridSize / 2
)

var spatialCurve, _ = hilbert.NewHilbert(spatialGridSize)

func spatialCell(z complex128) (int, int) {
	x := int(math.Round(real(z)*spatialScale)) + spatialGridOffset
	y := int(math.Round(imag(z)*spatialScale)) + spatialGridOffset
	return min(max(x, 0), spatialGridSize-1), min(max(y, 0), spatialGridSize-1)
}

// SpatialKey returns the Hilbert-curve code of the grid cell containing z.
// Nearby cells get nearby codes.
func SpatialKey(z complex128) uint64 {
	x, y := spatialCell(z)
	code, _ := spatialCurve.MapInverse(x, y)
	return uint64(code)
}

// SpatialCellCenter returns the disk point at the center of the cell with the given key.
func SpatialCellCenter(key uint64) complex128 {
	x, y, _ := spatialCurve.Map(int(key))
	return complex(
		float64(x-spatialGridOffset)/spatialScale,
		float64(y-spatialGridOffset)/spatialScale,
	)
}
