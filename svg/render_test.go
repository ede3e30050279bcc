package svg_test

import (
	"bytes"
	"errors"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/svg"
	"github.com/eak1mov/go-hypertiles/tiling"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	s := tiling.New(tiling.MustConfig(4, 5))
	s.Expand(2)

	var buffer bytes.Buffer
	require.NoError(t, svg.Render(&buffer, s, poincare.Identity(), svg.DefaultOptions))

	out := buffer.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
	require.Equal(t, 1, strings.Count(out, "<circle"))
	require.Equal(t, s.Len(), strings.Count(out, "<path"))
	require.Contains(t, out, "data-tile='0'")
}

func TestRenderMaxDistance(t *testing.T) {
	s := tiling.New(tiling.MustConfig(8, 3))
	s.Expand(2)

	opts := svg.DefaultOptions
	opts.MaxDistance = s.CenterDistance() * 1.1

	var buffer bytes.Buffer
	require.NoError(t, svg.Render(&buffer, s, poincare.Identity(), opts))
	require.Equal(t, 9, strings.Count(buffer.String(), "<path"))
}

func TestPolygons(t *testing.T) {
	s := tiling.New(tiling.MustConfig(7, 3))
	s.Expand(1)

	opts := svg.Options{Radius: 100, EdgeSamples: 4}
	polygons := svg.Polygons(s, poincare.Identity(), opts)
	require.Len(t, polygons, s.Len())

	for i, p := range polygons {
		require.Equal(t, i, p.Index)
		require.Len(t, p.Points, 7*4)
		for _, pt := range p.Points {
			require.Less(t, cmplx.Abs(complex(pt.X, pt.Y)), 100.0)
		}
	}

	// The origin tile's first point is its first canonical vertex, y flipped.
	v := s.Config().CanonicalPolygon()[0]
	require.InDelta(t, real(v)*100, polygons[0].Points[0].X, 1e-9)
	require.InDelta(t, -imag(v)*100, polygons[0].Points[0].Y, 1e-9)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWriteError(t *testing.T) {
	s := tiling.New(tiling.MustConfig(4, 5))
	err := svg.Render(failingWriter{}, s, poincare.Identity(), svg.DefaultOptions)
	require.EqualError(t, err, "disk full")
}
