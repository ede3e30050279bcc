// Package internal provides helpers shared by package tests.
package internal

import (
	"math/cmplx"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/google/go-cmp/cmp"
)

// EquateComplex returns a cmp option treating complex values within tol as equal.
func EquateComplex(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b complex128) bool {
		return cmplx.Abs(a-b) <= tol
	})
}

var probePoints = []complex128{0, 0.3, -0.25i, 0.1 + 0.4i, -0.5 - 0.2i}

// EquateMobius returns a cmp option comparing transforms by their action on a
// few probe points. (A, B) and (-A, -B) describe the same map.
func EquateMobius(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b poincare.Mobius) bool {
		for _, z := range probePoints {
			if cmplx.Abs(a.Apply(z)-b.Apply(z)) > tol {
				return false
			}
		}
		return true
	})
}
