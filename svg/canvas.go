// Package svg draws a tiling, as seen through a view transform, into an SVG
// document.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// Canvas is a minimal SVG serializer. The first write error is kept and
// every later call becomes a no-op.
type Canvas struct {
	writer io.Writer
	err    error
}

func NewCanvas(w io.Writer) *Canvas {
	return &Canvas{writer: w}
}

func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) printf(format string, a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.writer, format, a...)
}

// attrs turns "name=value" strings into attributes and anything else into a
// style attribute.
func attrs(s []string) string {
	var b strings.Builder
	for _, v := range s {
		switch {
		case strings.Index(v, "=") > 0:
			b.WriteString(v)
			b.WriteByte(' ')
		case v != "":
			fmt.Fprintf(&b, "style='%s' ", v)
		}
	}
	return b.String()
}

func (c *Canvas) Start(viewBox geom.Rect, s ...string) {
	c.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), attrs(s))
}

func (c *Canvas) End() {
	c.printf("</svg>\n")
}

func (c *Canvas) Circle(center geom.Coord, r float64, s ...string) {
	c.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", center.X, center.Y, r, attrs(s))
}

func (c *Canvas) StartPath(p geom.Coord, s ...string) {
	c.printf("<path %sd='M%f,%f", attrs(s), p.X, p.Y)
}

func (c *Canvas) PathLineTo(p geom.Coord) {
	c.printf("\n  L%f,%f", p.X, p.Y)
}

func (c *Canvas) ClosePath() {
	c.printf(" Z'/>\n")
}
