package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/eak1mov/go-hypertiles/svg"
	"github.com/google/subcommands"
)

type renderCmd struct {
	tilingFlags
	layers      int
	center      int
	radius      float64
	samples     int
	maxDistance float64
	outputPath  string
}

func (c *renderCmd) Name() string     { return "render" }
func (c *renderCmd) Synopsis() string { return "render a tiling to SVG" }
func (c *renderCmd) Usage() string {
	return "hypertiles render -o <path> [-p <sides> -q <valence> -layers <n> -center <tile>]\n"
}
func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	c.tilingFlags.SetFlags(f)
	f.IntVar(&c.layers, "layers", 4, "Number of BFS layers to expand")
	f.IntVar(&c.center, "center", 0, "Tile index shown at the center of the disk")
	f.Float64Var(&c.radius, "radius", svg.DefaultOptions.Radius, "Disk radius in SVG units")
	f.IntVar(&c.samples, "samples", svg.DefaultOptions.EdgeSamples, "Samples per polygon edge")
	f.Float64Var(&c.maxDistance, "max-dist", 0, "Skip tiles farther than this hyperbolic distance (0 draws all)")
	f.StringVar(&c.outputPath, "o", "", "Output SVG path")
}

func (c *renderCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s, err := c.newState()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	s.Expand(c.layers)

	if c.center < 0 || c.center >= s.Len() {
		log.Printf("invalid center tile: %d (have %d tiles)", c.center, s.Len())
		return subcommands.ExitFailure
	}
	view := s.Tile(c.center).Transform.Inverse()

	out := os.Stdout
	if c.outputPath != "" {
		out, err = os.Create(c.outputPath)
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	opts := svg.DefaultOptions
	opts.Radius = c.radius
	opts.EdgeSamples = c.samples
	opts.MaxDistance = c.maxDistance
	if err := svg.Render(out, s, view, opts); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
