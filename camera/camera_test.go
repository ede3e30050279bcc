package camera_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/eak1mov/go-hypertiles/camera"
	"github.com/eak1mov/go-hypertiles/internal"
	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/tiling"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func newScene(t *testing.T) (*tiling.State, *camera.Camera) {
	t.Helper()
	s := tiling.New(tiling.MustConfig(8, 3))
	c := camera.New()
	c.CoverageLayers = 2
	s.EnsureCoverage(0, c.CoverageLayers)
	return s, c
}

// absolutePosition returns the camera position in the frame of the origin tile,
// which does not change when the tiling is recentered.
func absolutePosition(s *tiling.State, c *camera.Camera) complex128 {
	return s.AddressTransform(s.Tile(c.Tile).Address).Compose(c.Local).Center()
}

func TestMoveWithinTile(t *testing.T) {
	s, c := newScene(t)
	require.False(t, c.Move(s, 0.1, 0))
	require.Equal(t, 0, c.Tile)
	require.InDelta(t, 0.1, poincare.Distance(0, c.Position(s)), eps)
}

func TestMoveCrossesTile(t *testing.T) {
	s, c := newScene(t)
	half := s.CenterDistance() / 2

	steps := 0
	for !c.Move(s, 0.1, 0) {
		steps++
		require.Less(t, float64(steps)*0.1, half+0.1, "camera never crossed the edge")
	}
	require.Equal(t, tiling.Address{0}, s.Tile(c.Tile).Address)

	// The tiling is recentered on the new tile.
	require.Less(t, cmplx.Abs(s.Tile(c.Tile).Center()), eps)

	travelled := float64(steps+1) * 0.1
	want := poincare.Translation(travelled, 0).Center()
	if got := absolutePosition(s, c); cmplx.Abs(got-want) > eps {
		t.Errorf("camera position = %v, want = %v", got, want)
	}

	// Coverage is rebuilt around the camera after recentering.
	radius := (float64(c.CoverageLayers) + 0.5) * s.CenterDistance()
	for _, idx := range s.Frontier() {
		require.GreaterOrEqual(t, poincare.Distance(s.Tile(idx).Center(), c.Position(s)), radius)
	}
}

func TestLongWalkKeepsFrameStable(t *testing.T) {
	s, c := newScene(t)
	c.CoverageLayers = 1

	crossings := 0
	for i := range 120 {
		c.Turn(0.05 * math.Sin(float64(i)/7))
		if c.Advance(s, 0.07) {
			crossings++
		}
	}
	require.Positive(t, crossings)
	require.InDelta(t, 1.0, c.Local.Det(), eps)

	// The local frame never strays beyond the current tile.
	require.Less(t, poincare.Distance(0, c.Local.Center()), s.CenterDistance())
	require.Less(t, cmplx.Abs(s.Tile(c.Tile).Center()), eps)
}

func TestView(t *testing.T) {
	s, c := newScene(t)
	c.Move(s, 0.2, -0.1)
	view := c.View(s)
	if got := view.Apply(c.Position(s)); cmplx.Abs(got) > eps {
		t.Errorf("View().Apply(Position()) = %v, want = 0", got)
	}
}

func TestSnapshotLerp(t *testing.T) {
	a := camera.Snapshot{Tile: 4, Local: poincare.Translation(0.2, 1), Heading: 0}
	b := camera.Snapshot{Tile: 4, Local: poincare.Translation(0.4, 1.2), Heading: 1}

	if diff := cmp.Diff(a.Local, a.Lerp(b, 0).Local, internal.EquateMobius(eps)); diff != "" {
		t.Errorf("Lerp(0) mismatch (-want+got):\n%v", diff)
	}
	if diff := cmp.Diff(b.Local, a.Lerp(b, 1).Local, internal.EquateMobius(eps)); diff != "" {
		t.Errorf("Lerp(1) mismatch (-want+got):\n%v", diff)
	}

	mid := a.Lerp(b, 0.5)
	require.InDelta(t, 1.0, mid.Local.Det(), eps)
	require.InDelta(t, 0.5, mid.Heading, eps)

	other := camera.Snapshot{Tile: 5, Local: poincare.Identity(), Heading: 3}
	require.Equal(t, other, a.Lerp(other, 0.3))
}

func TestDiskToBowl(t *testing.T) {
	require.Equal(t, [3]float32{0, 0, 0}, camera.DiskToBowl(0))

	prev := float32(-1)
	for _, r := range []float64{0.1, 0.3, 0.5, 0.8, 0.95} {
		p := camera.DiskToBowl(complex(r, 0))
		require.Less(t, p[1], float32(0.5))
		require.Greater(t, p[1], prev)
		prev = p[1]
	}

	p := camera.DiskToBowl(complex(0.3, -0.4))
	require.InDelta(t, 0.3, float64(p[0]), 1e-6)
	require.InDelta(t, -0.4, float64(p[2]), 1e-6)
}
