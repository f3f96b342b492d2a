package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/looptrace"
	"github.com/katalvlaran/gridwalk/tile"
)

const (
	loopDay     = 10
	keyEnclosed = "enclosed"
	keySanitize = "sanitize"
)

func newLoopCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loop",
		Short: "Print the distance from S to the farthest tile of its pipe loop",
		Long: `Trace the closed pipe loop through the S tile and print its half length.

Examples:
  gridwalk loop --input maze.txt
  gridwalk loop --enclosed --sanitize < maze.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLoop(cmd)
		},
	}
	cmd.Flags().Bool(keyEnclosed, false, "Also print the number of tiles enclosed by the loop")
	cmd.Flags().Bool(keySanitize, false, "Also print the grid with every off-loop tile cleared")

	return cmd
}

func (a *app) runLoop(cmd *cobra.Command) error {
	text, err := a.loadText(cmd.Context(), loopDay)
	if err != nil {
		return err
	}
	g, err := grid.Parse(text, tile.Decode)
	if err != nil {
		return err
	}
	tr, err := looptrace.New(g)
	if err != nil {
		return err
	}
	a.logger.Debug("start located",
		"at", tr.Start().Point(), "exits", tr.Exits(), "shape", tr.StartShape())

	half, err := tr.HalfLength()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, half)

	if a.v.GetBool(keyEnclosed) {
		inside, err := tr.EnclosedArea()
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, inside)
	}
	if a.v.GetBool(keySanitize) {
		clean, err := tr.Sanitize()
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, clean.Render(tile.Tile.Rune))
	}
	return nil
}
