package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/eak1mov/go-hypertiles/index"
	"github.com/eak1mov/go-hypertiles/store"
	"github.com/eak1mov/go-hypertiles/tile"
	"github.com/eak1mov/go-hypertiles/tiling"
)

func deduceFormat(format, filePath string) string {
	if format == "" && (strings.HasSuffix(filePath, ".db") || strings.HasSuffix(filePath, ".sqlite")) {
		return "sqlite"
	}
	if format == "" && strings.HasSuffix(filePath, ".index") {
		return "index"
	}
	if format == "" && strings.HasSuffix(filePath, ".index.gz") {
		return "index-gzip"
	}
	return format
}

// newSnapshotWriter opens a writer for format. Metadata is kept only by the
// sqlite format. Callers close the writer if it implements io.Closer.
func newSnapshotWriter(format, filePath string, metadata map[string]string) (tile.Writer, error) {
	switch format {
	case "sqlite":
		w, err := store.NewWriter(filePath, store.WithMetadata(metadata), store.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return w, nil
	case "index", "index-gzip":
		compression := index.CompressionNone
		if format == "index-gzip" {
			compression = index.CompressionGzip
		}
		w, err := index.NewWriter(filePath, index.WithCompression(compression))
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("invalid snapshot format: %q", format)
	}
}

func newSnapshotReader(format, filePath string) (tile.Visitor, error) {
	switch format {
	case "sqlite":
		r, err := store.NewReader(filePath)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "index", "index-gzip":
		r, err := index.NewReader(filePath)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("invalid snapshot format: %q", format)
	}
}

// tilingFlags are the {p,q} flags shared by subcommands that build a tiling.
type tilingFlags struct {
	p, q int
}

func (t *tilingFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&t.p, "p", 4, "Polygon sides")
	f.IntVar(&t.q, "q", 5, "Polygons around each vertex")
}

func (t *tilingFlags) newState() (*tiling.State, error) {
	cfg, err := tiling.NewConfig(t.p, t.q)
	if err != nil {
		return nil, err
	}
	return tiling.New(cfg, tiling.WithLogger(logger)), nil
}
