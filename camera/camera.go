// Package camera moves a viewer through a tiling.State.
//
// The camera position is kept as a transform local to the tile it stands on.
// When the camera crosses into a neighbor tile it switches tiles and recenters
// the tiling on the new one, so the local frame stays close to the identity no
// matter how far the camera travels.
package camera

import (
	"math"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/tiling"
)

const DefaultCoverageLayers = 3

type Camera struct {
	// Tile is the index of the tile the camera stands on.
	Tile int
	// Local maps the tile's frame to the camera's frame.
	Local   poincare.Mobius
	Heading float64
	// CoverageLayers is the number of tile layers kept materialized around the camera.
	CoverageLayers int
}

func New() *Camera {
	return &Camera{
		Tile:           0,
		Local:          poincare.Identity(),
		CoverageLayers: DefaultCoverageLayers,
	}
}

// Transform returns the camera frame in the tiling's current frame.
func (c *Camera) Transform(s *tiling.State) poincare.Mobius {
	return s.Tile(c.Tile).Transform.Compose(c.Local)
}

// View returns the transform renderers apply to tile transforms.
func (c *Camera) View(s *tiling.State) poincare.Mobius {
	return c.Transform(s).Inverse()
}

func (c *Camera) Position(s *tiling.State) complex128 {
	return c.Transform(s).Center()
}

// Move translates the camera by (dx, dy) in its tile's frame, then makes sure
// the tiling covers CoverageLayers around it. It reports whether the camera
// crossed into another tile.
func (c *Camera) Move(s *tiling.State, dx, dy float64) bool {
	crossed := false
	if dx != 0 || dy != 0 {
		step := poincare.Translation(math.Hypot(dx, dy), math.Atan2(dy, dx))
		c.Local = c.Local.Compose(step)
		crossed = c.crossTile(s)
	}
	s.EnsureCoverage(c.Position(s), c.CoverageLayers)
	return crossed
}

// Advance moves the camera by dist along its heading.
func (c *Camera) Advance(s *tiling.State, dist float64) bool {
	return c.Move(s, -math.Sin(c.Heading)*dist, -math.Cos(c.Heading)*dist)
}

func (c *Camera) Turn(angle float64) {
	c.Heading += angle
}

func (c *Camera) crossTile(s *tiling.State) bool {
	pos := c.Local.Center()
	tile := s.Tile(c.Tile)

	best, bestDist := -1, poincare.Distance(pos, 0)
	for dir, xform := range s.NeighborTransforms(tile.Parity()) {
		if d := poincare.Distance(pos, xform.Center()); d < bestDist {
			best, bestDist = dir, d
		}
	}
	if best < 0 {
		return false
	}

	next, found := s.Neighbor(c.Tile, best)
	if !found {
		return false
	}

	world := tile.Transform.Compose(c.Local)
	c.Local = s.Tile(next).Transform.Inverse().Compose(world)
	c.Tile = next
	s.RecenterOn(next)
	return true
}
