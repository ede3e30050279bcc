package svg

import (
	"fmt"
	"io"

	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/tiling"
	"github.com/jbeda/geom"
)

// Options controls rendering.
type Options struct {
	// Radius of the disk boundary in SVG units.
	Radius float64
	// Number of samples per polygon edge. Edges are geodesics, i.e. circular
	// arcs in the disk, so they are approximated by polylines.
	EdgeSamples int
	// Tiles whose viewed center is farther than MaxDistance from the origin
	// are skipped. Zero draws every tile.
	MaxDistance float64
	// Fill colors cycled by tile depth.
	Palette []string
}

var DefaultOptions = Options{
	Radius:      500,
	EdgeSamples: 8,
	Palette:     []string{"#f4d35e", "#ee964b", "#0d3b66", "#faf0ca"},
}

func (o Options) withDefaults() Options {
	if o.Radius <= 0 {
		o.Radius = DefaultOptions.Radius
	}
	if o.EdgeSamples <= 0 {
		o.EdgeSamples = DefaultOptions.EdgeSamples
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultOptions.Palette
	}
	return o
}

// Polygon is a tile outline projected to SVG coordinates.
type Polygon struct {
	Index  int
	Depth  int
	Points []geom.Coord
}

func (p *Polygon) Bounds() geom.Rect {
	r := geom.Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		r.ExpandToContainCoord(pt)
	}
	return r
}

func toCoord(z complex128, radius float64) geom.Coord {
	// SVG y axis points down.
	return geom.Coord{X: real(z) * radius, Y: -imag(z) * radius}
}

// Polygons returns the outlines of the tiles of s selected by opts, in tile
// index order.
func Polygons(s *tiling.State, view poincare.Mobius, opts Options) []Polygon {
	opts = opts.withDefaults()
	canonical := s.Config().CanonicalPolygon()
	n := len(canonical)

	placements := s.Placements(view, opts.MaxDistance)
	polygons := make([]Polygon, 0, len(placements))
	vertices := make([]complex128, n)
	for _, pl := range placements {
		for k, v := range canonical {
			vertices[k] = pl.Transform.Apply(v)
		}
		points := make([]geom.Coord, 0, n*opts.EdgeSamples)
		for k := range n {
			a, b := vertices[k], vertices[(k+1)%n]
			for j := range opts.EdgeSamples {
				t := float64(j) / float64(opts.EdgeSamples)
				points = append(points, toCoord(poincare.GeodesicLerp(a, b, t), opts.Radius))
			}
		}
		polygons = append(polygons, Polygon{Index: pl.Index, Depth: pl.Depth, Points: points})
	}
	return polygons
}

// Render writes an SVG document with the disk boundary and every selected tile.
func Render(w io.Writer, s *tiling.State, view poincare.Mobius, opts Options) error {
	opts = opts.withDefaults()
	polygons := Polygons(s, view, opts)

	margin := opts.Radius * 0.02
	viewBox := geom.Rect{
		Min: geom.Coord{X: -opts.Radius - margin, Y: -opts.Radius - margin},
		Max: geom.Coord{X: opts.Radius + margin, Y: opts.Radius + margin},
	}

	c := NewCanvas(w)
	c.Start(viewBox)
	c.Circle(geom.Coord{}, opts.Radius, "fill:none;stroke:#333;stroke-width:1")
	for i := range polygons {
		p := &polygons[i]
		if !viewBox.ContainsRect(p.Bounds()) {
			continue
		}
		fill := opts.Palette[p.Depth%len(opts.Palette)]
		c.StartPath(p.Points[0],
			fmt.Sprintf("data-tile='%d'", p.Index),
			fmt.Sprintf("fill:%s;stroke:#222;stroke-width:0.5", fill))
		for _, pt := range p.Points[1:] {
			c.PathLineTo(pt)
		}
		c.ClosePath()
	}
	c.End()
	return c.Err()
}
