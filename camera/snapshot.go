package camera

import (
	"math"

	"github.com/eak1mov/go-hypertiles/poincare"
)

// Snapshot is a copy of the camera state taken at a simulation tick.
type Snapshot struct {
	Tile    int
	Local   poincare.Mobius
	Heading float64
}

func (c *Camera) Snapshot() Snapshot {
	return Snapshot{Tile: c.Tile, Local: c.Local, Heading: c.Heading}
}

const minLerpDet = 1e-20

// Lerp interpolates from s to next. Snapshots on different tiles live in
// different frames, in that case next is returned unchanged.
func (s Snapshot) Lerp(next Snapshot, alpha float64) Snapshot {
	if s.Tile != next.Tile {
		return next
	}

	local := poincare.Mobius{
		A: lerpComplex(s.Local.A, next.Local.A, alpha),
		B: lerpComplex(s.Local.B, next.Local.B, alpha),
	}
	if math.Abs(local.Det()) < minLerpDet {
		local = next.Local
	} else {
		local = local.Normalized()
	}

	return Snapshot{
		Tile:    next.Tile,
		Local:   local,
		Heading: s.Heading + (next.Heading-s.Heading)*alpha,
	}
}

func lerpComplex(a, b complex128, alpha float64) complex128 {
	return a + (b-a)*complex(alpha, 0)
}

// DiskToBowl lifts a disk point onto a shallow bowl for 3D placement:
// X and Z are the disk coordinates, Y rises toward the boundary and stays below 0.2.
func DiskToBowl(z complex128) [3]float32 {
	r2 := poincare.NormSq(z)
	y := 0.4 * r2 / (1 + r2)
	return [3]float32{float32(real(z)), float32(y), float32(imag(z))}
}
