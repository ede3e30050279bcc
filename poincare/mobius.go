// Package poincare provides isometries and metric helpers for the Poincaré disk.
//
// Points are complex128 values inside the open unit disk. Disk automorphisms
// are represented in SU(1,1) form, see Mobius.
package poincare

import (
	"math"
	"math/cmplx"
)

// NormSq returns |z|^2.
func NormSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Polar returns r*e^(i*theta).
func Polar(r, theta float64) complex128 {
	return cmplx.Rect(r, theta)
}

// Mobius is the disk automorphism z -> (A*z + B) / (conj(B)*z + conj(A)).
// Valid values satisfy |A|^2 - |B|^2 = 1.
type Mobius struct {
	A complex128
	B complex128
}

func Identity() Mobius {
	return Mobius{A: 1, B: 0}
}

// Translation moves the origin by hyperbolic distance dist in direction angle.
func Translation(dist, angle float64) Mobius {
	return Mobius{
		A: complex(math.Cosh(dist/2), 0),
		B: Polar(math.Sinh(dist/2), angle),
	}
}

// Rotation rotates the disk around the origin by angle.
func Rotation(angle float64) Mobius {
	return Mobius{A: Polar(1, angle/2), B: 0}
}

// MoveToOrigin returns the automorphism z -> (z - p) / (1 - conj(p)*z).
// p must lie inside the open unit disk.
func MoveToOrigin(p complex128) Mobius {
	s := 1 / math.Sqrt(1-NormSq(p))
	return Mobius{A: complex(s, 0), B: -p * complex(s, 0)}
}

func (m Mobius) Apply(z complex128) complex128 {
	num := m.A*z + m.B
	den := cmplx.Conj(m.B)*z + cmplx.Conj(m.A)
	return num / den
}

// Center returns the image of the origin.
func (m Mobius) Center() complex128 {
	return m.B / cmplx.Conj(m.A)
}

// Compose returns m∘o, i.e. the map z -> m(o(z)), renormalized.
func (m Mobius) Compose(o Mobius) Mobius {
	return Mobius{
		A: m.A*o.A + m.B*cmplx.Conj(o.B),
		B: m.A*o.B + m.B*cmplx.Conj(o.A),
	}.Normalized()
}

// Inverse preserves the determinant exactly and needs no renormalization.
func (m Mobius) Inverse() Mobius {
	return Mobius{A: cmplx.Conj(m.A), B: -m.B}
}

// Det returns |A|^2 - |B|^2.
func (m Mobius) Det() float64 {
	return NormSq(m.A) - NormSq(m.B)
}

// Normalized rescales A and B so that Det() == 1.
func (m Mobius) Normalized() Mobius {
	scale := complex(1/math.Sqrt(math.Abs(m.Det())), 0)
	return Mobius{A: m.A * scale, B: m.B * scale}
}
