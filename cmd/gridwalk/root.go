package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridwalk/puzzleinput"
)

// Configuration keys shared by every command.
const (
	keyInput   = "input"
	keyDir     = "dir"
	keyDay     = "day"
	keyVerbose = "verbose"
)

// app carries what the commands share: resolved configuration, the logger
// and the process streams.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		in:     in,
		out:    out,
		errOut: errOut,
	}
	a.v.SetEnvPrefix("gridwalk")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:     "gridwalk",
		Short:   "Walk pipe loops and measure galaxy distances on text grids",
		Version: version,
		Long: `gridwalk reads a text grid and prints a single integer.

Input is taken from --input (a file, or - for stdin), from --dir/--day
(a directory of NN.txt files), or from stdin when neither is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}
			level := slog.LevelInfo
			if a.v.GetBool(keyVerbose) {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringP(keyInput, "i", "", "Input file, or - for stdin")
	root.PersistentFlags().String(keyDir, "", "Directory of NN.txt puzzle inputs")
	root.PersistentFlags().Int(keyDay, 0, "Puzzle day to read from --dir (default depends on the command)")
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "Enable debug logging")

	root.AddCommand(newLoopCmd(a), newGalaxiesCmd(a))

	return root
}

// loadText resolves the configured input source and returns its text.
// defaultDay is used with --dir when --day is not set.
func (a *app) loadText(ctx context.Context, defaultDay int) (string, error) {
	input, dir := a.v.GetString(keyInput), a.v.GetString(keyDir)

	switch {
	case input == "-" || (input == "" && dir == ""):
		b, err := io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		a.logger.Debug("input loaded", "source", "stdin", "bytes", len(b))
		return string(b), nil

	case input != "":
		b, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		// Files named like puzzle inputs (NN.txt) are checked against the
		// command's day; anything else is taken as is.
		if day, err := puzzleinput.DayNumber(input); err == nil && day != defaultDay {
			a.logger.Warn("input file looks like another day", "source", input, "day", day, "want", defaultDay)
		}
		a.logger.Debug("input loaded", "source", input, "bytes", len(b))
		return string(b), nil

	default:
		day := a.v.GetInt(keyDay)
		if day == 0 {
			day = defaultDay
		}
		src := puzzleinput.Dir{Root: dir}
		text, err := src.Text(ctx, day)
		if err != nil {
			return "", err
		}
		a.logger.Debug("input loaded", "source", src.Path(day), "bytes", len(text))
		return text, nil
	}
}
