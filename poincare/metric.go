package poincare

import (
	"math"
	"math/cmplx"
)

// MaxDistance is returned by Distance for degenerate point pairs.
const MaxDistance = math.MaxFloat64

const (
	maxDistanceRatio  = 0.99999
	minDistanceDenom  = 1e-15
	degenerateLerpMag = 1e-15
)

// Distance returns the hyperbolic distance between two points of the disk.
func Distance(z1, z2 complex128) float64 {
	num := cmplx.Abs(z1 - z2)
	den := cmplx.Abs(1 - cmplx.Conj(z1)*z2)
	if den < minDistanceDenom {
		return MaxDistance
	}
	ratio := min(num/den, maxDistanceRatio)
	return 2 * math.Atanh(ratio)
}

// GeodesicLerp returns the point at fraction t along the geodesic from z1 to z2.
func GeodesicLerp(z1, z2 complex128, t float64) complex128 {
	toOrigin := MoveToOrigin(z1)
	w := toOrigin.Apply(z2)
	mag := cmplx.Abs(w)
	if mag < degenerateLerpMag {
		return z1
	}
	r := math.Tanh(t * math.Atanh(mag))
	return toOrigin.Inverse().Apply(w * complex(r/mag, 0))
}
