package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"slices"

	"github.com/eak1mov/go-hypertiles/store"
	"github.com/eak1mov/go-hypertiles/tile"
	"github.com/eak1mov/go-hypertiles/tiling"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type inspectCmd struct {
	inputFormat string
	inputPath   string
	samples     int
}

func (c *inspectCmd) Name() string     { return "inspect" }
func (c *inspectCmd) Synopsis() string { return "print statistics of a tiling snapshot" }
func (c *inspectCmd) Usage() string {
	return "hypertiles inspect -i <path> [-if <format> -n <samples>]\n"
}
func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path")
	f.StringVar(&c.inputFormat, "if", "", "Input format (sqlite, index, index-gzip)")
	f.IntVar(&c.samples, "n", 10, "Number of tile addresses to print")
}

func (c *inspectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	reader, err := newSnapshotReader(deduceFormat(c.inputFormat, c.inputPath), c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if closer, ok := reader.(io.Closer); ok {
		defer closer.Close()
	}

	if r, ok := reader.(*store.Reader); ok {
		metadata, err := r.ReadMetadata()
		if err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		for _, name := range slices.Sorted(maps.Keys(metadata)) {
			fmt.Printf("%s = %s\n", name, metadata[name])
		}
	}

	var records []tile.Record
	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())
	err = reader.VisitTiles(func(record tile.Record) error {
		records = append(records, record)
		bar.Add(1)
		return nil
	})
	bar.Finish()
	fmt.Println()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	addrs, err := tile.Addresses(records)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	depths := make(map[int]int)
	maxDrift := 0.0
	for _, r := range records {
		depths[r.Depth]++
		maxDrift = max(maxDrift, math.Abs(r.Transform.Det()-1))
	}

	fmt.Printf("%d tiles, max determinant drift %.3e\n", len(records), maxDrift)
	for _, depth := range slices.Sorted(maps.Keys(depths)) {
		fmt.Printf("depth %d: %d tiles\n", depth, depths[depth])
	}
	for i := range min(c.samples, len(records)) {
		fmt.Printf("tile %d %v center %.6f\n", i, tiling.FormatAddress(addrs[i]), records[i].Center())
	}
	return subcommands.ExitSuccess
}
