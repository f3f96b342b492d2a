package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/gridwalk/tile"
)

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func New[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]T, 0, h*w)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{rows: h, cols: w, cells: cells}, nil
}

// Parse builds a Grid from text, one row per line, decoding every rune with
// decode. A trailing newline, '\r' line endings and trailing blank lines are
// tolerated. Decoder failures are wrapped in ErrDecode with the 1-based line
// and column of the offending rune.
func Parse[T any](text string, decode func(rune) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	values := make([][]T, 0, len(lines))
	for i, line := range lines {
		row := make([]T, 0, len(line))
		col := 0
		for _, r := range line {
			col++
			v, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("%w at line %d, column %d: %w", ErrDecode, i+1, col, err)
			}
			row = append(row, v)
		}
		values = append(values, row)
	}

	return New(values)
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the cell at p. It panics when p is out of bounds; callers
// reach new coordinates only through Neighbor or Offset.
func (g *Grid[T]) Get(p Point) T {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point %v outside %dx%d grid", p, g.rows, g.cols))
	}
	return g.cells[g.Index(p)]
}

// Offset returns p shifted by (dRow, dCol) and whether the result is inside
// the grid. The addition is done on signed values and checked before use.
func (g *Grid[T]) Offset(p Point, dRow, dCol int) (Point, bool) {
	q := Point{Row: p.Row + dRow, Col: p.Col + dCol}
	if !g.InBounds(p) || !g.InBounds(q) {
		return Point{}, false
	}
	return q, true
}

// Neighbor returns the cell one step from p toward d. An invalid d has no
// neighbor.
func (g *Grid[T]) Neighbor(p Point, d tile.Direction) (Point, bool) {
	if !d.Valid() {
		return Point{}, false
	}
	dRow, dCol := d.Offset()
	return g.Offset(p, dRow, dCol)
}

// Index maps p to its row-major position: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major position back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// Cells iterates over every cell in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Row iterates over the cells of row r from left to right.
func (g *Grid[T]) Row(r int) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		if r < 0 || r >= g.rows {
			return
		}
		for c := 0; c < g.cols; c++ {
			p := Point{Row: r, Col: c}
			if !yield(p, g.cells[g.Index(p)]) {
				return
			}
		}
	}
}

// Col iterates over the cells of column c from top to bottom.
func (g *Grid[T]) Col(c int) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		if c < 0 || c >= g.cols {
			return
		}
		for r := 0; r < g.rows; r++ {
			p := Point{Row: r, Col: c}
			if !yield(p, g.cells[g.Index(p)]) {
				return
			}
		}
	}
}

// Find returns the first cell, in row-major order, satisfying pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for p, v := range g.Cells() {
		if pred(v) {
			return p, true
		}
	}
	return Point{}, false
}

// FindAll returns every cell satisfying pred, in row-major order.
func (g *Grid[T]) FindAll(pred func(T) bool) []Point {
	var out []Point
	for p, v := range g.Cells() {
		if pred(v) {
			out = append(out, p)
		}
	}
	return out
}

// Map returns a new grid whose cells are fn applied to every cell of g.
// g itself is left untouched.
func (g *Grid[T]) Map(fn func(Point, T) T) *Grid[T] {
	cells := make([]T, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(g.Coordinate(i), v)
	}
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

// Render formats g as text, one line per row, using fn for each cell.
// Every line, including the last, ends with '\n'.
func (g *Grid[T]) Render(fn func(T) rune) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for i, v := range g.cells {
		sb.WriteRune(fn(v))
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
