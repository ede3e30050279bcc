package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/eak1mov/go-hypertiles/camera"
	"github.com/eak1mov/go-hypertiles/poincare"
	"github.com/eak1mov/go-hypertiles/svg"
	"github.com/eak1mov/go-hypertiles/tiling"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type walkCmd struct {
	tilingFlags
	steps      int
	stepSize   float64
	maxTurn    float64
	coverage   int
	seed       uint64
	outputPath string
}

func (c *walkCmd) Name() string     { return "walk" }
func (c *walkCmd) Synopsis() string { return "walk a camera randomly through a tiling" }
func (c *walkCmd) Usage() string {
	return "hypertiles walk [-p <sides> -q <valence> -steps <n> -step <dist> -seed <n> -o <svg path>]\n"
}
func (c *walkCmd) SetFlags(f *flag.FlagSet) {
	c.tilingFlags.SetFlags(f)
	f.IntVar(&c.steps, "steps", 1000, "Number of steps")
	f.Float64Var(&c.stepSize, "step", 0.05, "Hyperbolic distance per step")
	f.Float64Var(&c.maxTurn, "turn", 0.3, "Maximum heading change per step, in radians")
	f.IntVar(&c.coverage, "coverage", camera.DefaultCoverageLayers, "Tile layers kept around the camera")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
	f.StringVar(&c.outputPath, "o", "", "Write the final view as SVG to this path")
}

func (c *walkCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s, err := c.newState()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	cam := camera.New()
	cam.CoverageLayers = c.coverage
	s.EnsureCoverage(0, cam.CoverageLayers)

	rng := rand.New(rand.NewPCG(c.seed, c.seed))
	crossings := 0
	bar := progressbar.NewOptions(c.steps, progressbar.OptionSetDescription("walking"), progressbar.OptionShowCount())
	for range c.steps {
		cam.Turn((rng.Float64()*2 - 1) * c.maxTurn)
		if cam.Advance(s, c.stepSize) {
			crossings++
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	fmt.Printf("%v: %d crossings, %d tiles\n", s.Config(), crossings, s.Len())
	fmt.Printf("camera tile %d at %v, local offset %.6f\n",
		cam.Tile, tiling.FormatAddress(s.Tile(cam.Tile).Address), poincare.Distance(0, cam.Local.Center()))
	fmt.Printf("determinant drift %.3e\n", math.Abs(cam.Transform(s).Det()-1))

	if c.outputPath == "" {
		return subcommands.ExitSuccess
	}
	out, err := os.Create(c.outputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	opts := svg.DefaultOptions
	opts.MaxDistance = float64(cam.CoverageLayers) * s.CenterDistance()
	if err := svg.Render(out, s, cam.View(s), opts); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
