package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	_ "github.com/mattn/go-sqlite3"
)

var logger = slog.New(slog.DiscardHandler)

func main() {
	verbose := flag.Bool("v", false, "Log tiling and snapshot progress to stderr")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&generateCmd{}, "")
	subcommands.Register(&renderCmd{}, "")
	subcommands.Register(&walkCmd{}, "")
	subcommands.Register(&inspectCmd{}, "")

	flag.Parse()
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	os.Exit(int(subcommands.Execute(context.Background())))
}
