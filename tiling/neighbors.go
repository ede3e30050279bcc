package tiling

import (
	"math"

	"github.com/eak1mov/go-hypertiles/poincare"
)

// NeighborTransforms returns, per BFS-depth parity, the p transforms mapping a
// tile onto its edge-adjacent neighbors in the tile's own frame.
//
// For odd p the edge opposite a translated edge is a vertex, so each neighbor
// is additionally rotated by π/p. The sign alternates with parity to keep
// orientations from accumulating across layers.
func (c Config) NeighborTransforms() [2][]poincare.Mobius {
	dist := c.CenterDistance()
	step := c.VertexAngleStep()

	var result [2][]poincare.Mobius
	for parity := range result {
		turn := poincare.Identity()
		if c.P%2 == 1 {
			sign := 1.0
			if parity == 1 {
				sign = -1.0
			}
			turn = poincare.Rotation(sign * math.Pi / float64(c.P))
		}

		xforms := make([]poincare.Mobius, c.P)
		for k := range xforms {
			xforms[k] = poincare.Translation(dist, float64(k)*step).Compose(turn)
		}
		result[parity] = xforms
	}
	return result
}
