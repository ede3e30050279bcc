// Package tiling grows a {p,q} hyperbolic tessellation of the Poincaré disk.
//
// Tiles are materialized breadth-first from an origin tile. Each tile keeps the
// canonical address of the BFS path that first reached it, so its transform
// can always be recomputed from scratch (see State.RecenterOn).
package tiling

import (
	"errors"
	"fmt"
	"math"

	"github.com/eak1mov/go-hypertiles/poincare"
)

var ErrInvalidConfig = errors.New("hypertiles: invalid tiling config")

// MaxSides is the largest supported p. Directions are stored as bytes.
const MaxSides = math.MaxUint8

// Config describes a {P,Q} tiling: regular P-gons, Q of them around each vertex.
type Config struct {
	P int
	Q int
}

// NewConfig validates p and q. Only hyperbolic tilings, (p-2)(q-2) > 4, are accepted.
func NewConfig(p, q int) (Config, error) {
	cfg := Config{P: p, Q: q}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustConfig is like NewConfig but panics on an invalid configuration.
func MustConfig(p, q int) Config {
	cfg, err := NewConfig(p, q)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) Validate() error {
	if c.P < 3 || c.Q < 3 {
		return fmt.Errorf("%w: %v needs p >= 3 and q >= 3", ErrInvalidConfig, c)
	}
	if c.P > MaxSides {
		return fmt.Errorf("%w: %v has more than %d sides", ErrInvalidConfig, c, MaxSides)
	}
	if (c.P-2)*(c.Q-2) <= 4 {
		return fmt.Errorf("%w: %v is not hyperbolic", ErrInvalidConfig, c)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("{%d,%d}", c.P, c.Q)
}

// VertexAngleStep returns the angle between adjacent edge directions, 2π/p.
func (c Config) VertexAngleStep() float64 {
	return 2 * math.Pi / float64(c.P)
}

// PolygonRadius returns the Euclidean disk radius of the canonical polygon's
// vertices: cosh(χ) = cot(π/p)·cot(π/q), r = tanh(χ/2).
func (c Config) PolygonRadius() float64 {
	coshChi := 1 / math.Tan(math.Pi/float64(c.P)) / math.Tan(math.Pi/float64(c.Q))
	return math.Tanh(math.Acosh(coshChi) / 2)
}

// CenterDistance returns the hyperbolic distance D between centers of
// adjacent tiles: cosh(ψ) = cos(π/q)/sin(π/p), cosh(D) = 2cosh(ψ)²-1.
func (c Config) CenterDistance() float64 {
	coshPsi := math.Cos(math.Pi/float64(c.Q)) / math.Sin(math.Pi/float64(c.P))
	return math.Acosh(2*coshPsi*coshPsi - 1)
}

// CanonicalPolygon returns the vertices of the origin tile. Edge k is centered
// on direction k·VertexAngleStep(), vertices sit half a step off.
func (c Config) CanonicalPolygon() []complex128 {
	r := c.PolygonRadius()
	step := c.VertexAngleStep()
	verts := make([]complex128, c.P)
	for k := range verts {
		verts[k] = poincare.Polar(r, step/2+float64(k)*step)
	}
	return verts
}
