package puzzleinput

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sentinel errors for input lookup.
var (
	// ErrBadDay indicates a day outside 1..25.
	ErrBadDay = errors.New("puzzleinput: day must be between 1 and 25")
	// ErrNotFound indicates no input exists for the requested day.
	ErrNotFound = errors.New("puzzleinput: input not found")
)

// Source returns the raw text of a puzzle input.
type Source interface {
	Text(ctx context.Context, day int) (string, error)
}

// Dir is a Source backed by a directory of NN.txt files.
type Dir struct {
	Root string
}

var _ Source = Dir{}

// Path returns the file Dir reads for day.
func (d Dir) Path(day int) string {
	return filepath.Join(d.Root, fmt.Sprintf("%02d.txt", day))
}

// Text reads the input file for day.
func (d Dir) Text(ctx context.Context, day int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if day < 1 || day > 25 {
		return "", fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	b, err := os.ReadFile(d.Path(day))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: day %d in %s", ErrNotFound, day, d.Root)
	}
	if err != nil {
		return "", fmt.Errorf("puzzleinput: read day %d: %w", day, err)
	}
	return string(b), nil
}

// DayNumber extracts the day from a file name such as "07.txt" or
// "/inputs/10.in": the base name without extension, leading zero stripped.
func DayNumber(name string) (int, error) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	day, err := strconv.Atoi(strings.TrimPrefix(stem, "0"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDay, name)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	return day, nil
}
