package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/galaxy"
)

const (
	galaxiesDay  = 11
	keyFactor    = "factor"
	keyConn      = "conn"
	keyHeuristic = "heuristic"
)

func newGalaxiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "galaxies",
		Short: "Print the sum of least costs between every pair of galaxies",
		Long: `Expand every galaxy-free row and column, then sum the least-cost
distances between all pairs of '#' cells.

Examples:
  gridwalk galaxies --input universe.txt
  gridwalk galaxies --factor 1000000 --heuristic chebyshev < universe.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGalaxies(cmd)
		},
	}
	cmd.Flags().Int64(keyFactor, 2, "Cost of crossing an expanded row or column")
	cmd.Flags().Int(keyConn, 8, "Move set: 4 (orthogonal) or 8 (with diagonals)")
	cmd.Flags().String(keyHeuristic, "zero", "A* heuristic: zero or chebyshev")

	return cmd
}

// finderOptions translates the resolved configuration into galaxy options.
func (a *app) finderOptions() ([]galaxy.Option, error) {
	opts := []galaxy.Option{galaxy.WithFactor(a.v.GetInt64(keyFactor))}

	switch c := a.v.GetInt(keyConn); c {
	case 4:
		opts = append(opts, galaxy.WithConnectivity(galaxy.Conn4))
	case 8:
		opts = append(opts, galaxy.WithConnectivity(galaxy.Conn8))
	default:
		return nil, fmt.Errorf("%w: --conn must be 4 or 8, got %d", galaxy.ErrOptionViolation, c)
	}

	switch h := strings.ToLower(a.v.GetString(keyHeuristic)); h {
	case "zero", "":
		opts = append(opts, galaxy.WithHeuristic(galaxy.Zero))
	case "chebyshev":
		opts = append(opts, galaxy.WithHeuristic(galaxy.Chebyshev))
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", galaxy.ErrOptionViolation, h)
	}

	return opts, nil
}

func (a *app) runGalaxies(cmd *cobra.Command) error {
	opts, err := a.finderOptions()
	if err != nil {
		return err
	}
	text, err := a.loadText(cmd.Context(), galaxiesDay)
	if err != nil {
		return err
	}
	m, err := galaxy.Parse(text)
	if err != nil {
		return err
	}
	f, err := galaxy.NewFinder(m, opts...)
	if err != nil {
		return err
	}
	ix := galaxy.NewIndex(m)
	a.logger.Debug("map expanded",
		"rows", m.Grid().Rows(), "cols", m.Grid().Cols(), "galaxies", ix.Len(),
		"factor", f.Options().Factor)

	sum, err := f.SumPairs(ix)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, sum)
	return nil
}
