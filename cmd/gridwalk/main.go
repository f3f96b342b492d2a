// Command gridwalk solves the pipe-loop and galaxy-distance puzzles.
//
// Usage:
//
//	gridwalk loop --input maze.txt --enclosed
//	gridwalk galaxies --dir ./inputs --day 11 --factor 1000000
//	GRIDWALK_FACTOR=10 gridwalk galaxies < universe.txt
//
// Every flag may also be set through a GRIDWALK_<FLAG> environment variable.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

// version is overridden at build time:
//
//	go build -ldflags "-X main.version=v1.2.0" ./cmd/gridwalk
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error("application error", "error", err)
		cancel()
		os.Exit(1)
	}
}
