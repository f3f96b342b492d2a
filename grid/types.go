package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDecode indicates a cell rune could not be decoded.
	ErrDecode = errors.New("grid: cannot decode cell")
)

// Point addresses a single cell.
type Point struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular, row-major container. It is immutable once built.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}
