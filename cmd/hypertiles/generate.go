package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/eak1mov/go-hypertiles/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type generateCmd struct {
	tilingFlags
	layers       int
	recenter     int
	outputFormat string
	outputPath   string
}

func (c *generateCmd) Name() string     { return "generate" }
func (c *generateCmd) Synopsis() string { return "generate a tiling snapshot" }
func (c *generateCmd) Usage() string {
	return "hypertiles generate -o <path> [-p <sides> -q <valence> -layers <n> -recenter <tile> -of <format>]\n"
}
func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	c.tilingFlags.SetFlags(f)
	f.IntVar(&c.layers, "layers", 3, "Number of BFS layers to expand")
	f.IntVar(&c.recenter, "recenter", 0, "Tile index to recenter on before writing")
	f.StringVar(&c.outputPath, "o", "", "Output path")
	f.StringVar(&c.outputFormat, "of", "", "Output format (sqlite, index, index-gzip)")
}

func (c *generateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s, err := c.newState()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bar := progressbar.NewOptions(c.layers, progressbar.OptionSetDescription("expanding"), progressbar.OptionShowCount())
	for range c.layers {
		s.Expand(1)
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	if c.recenter < 0 || c.recenter >= s.Len() {
		log.Printf("invalid recenter tile: %d (have %d tiles)", c.recenter, s.Len())
		return subcommands.ExitFailure
	}
	if c.recenter != 0 {
		s.RecenterOn(c.recenter)
	}

	metadata := map[string]string{
		"p":        strconv.Itoa(c.p),
		"q":        strconv.Itoa(c.q),
		"layers":   strconv.Itoa(c.layers),
		"recenter": strconv.Itoa(c.recenter),
	}
	writer, err := newSnapshotWriter(deduceFormat(c.outputFormat, c.outputPath), c.outputPath, metadata)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if closer, ok := writer.(io.Closer); ok {
		defer closer.Close()
	}

	bar = progressbar.NewOptions(s.Len(), progressbar.OptionSetDescription("writing"), progressbar.OptionShowCount())
	for idx := range s.Tiles() {
		if err := writer.WriteTile(tile.FromState(s, idx)); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%v: %d tiles, %d on the frontier\n", s.Config(), s.Len(), len(s.Frontier()))
	return subcommands.ExitSuccess
}
