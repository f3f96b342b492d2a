package galaxy

import (
	"iter"

	"github.com/katalvlaran/gridwalk/grid"
)

// Map is a marker grid with its expanded rows and columns resolved.
// It is immutable once built.
type Map struct {
	cells       *grid.Grid[Cell]
	rowExpanded []bool
	colExpanded []bool
}

// Parse reads a '.'/'#' grid and expands it.
func Parse(text string) (*Map, error) {
	g, err := grid.Parse(text, DecodeCell)
	if err != nil {
		return nil, err
	}
	return Expand(g), nil
}

// Expand marks every row and column of g without a Marker as expanded and
// rewrites its cells to ExpandedEmpty. g is not modified.
// Complexity: O(W×H).
func Expand(g *grid.Grid[Cell]) *Map {
	m := &Map{
		rowExpanded: make([]bool, g.Rows()),
		colExpanded: make([]bool, g.Cols()),
	}
	for r := range m.rowExpanded {
		m.rowExpanded[r] = !hasMarker(g.Row(r))
	}
	for c := range m.colExpanded {
		m.colExpanded[c] = !hasMarker(g.Col(c))
	}
	m.cells = g.Map(func(p grid.Point, v Cell) Cell {
		switch {
		case v == Marker:
			return Marker
		case m.rowExpanded[p.Row] || m.colExpanded[p.Col]:
			return ExpandedEmpty
		default:
			return Empty
		}
	})

	return m
}

func hasMarker(line iter.Seq2[grid.Point, Cell]) bool {
	for _, v := range line {
		if v == Marker {
			return true
		}
	}
	return false
}

// Grid returns the expanded cell grid.
func (m *Map) Grid() *grid.Grid[Cell] { return m.cells }

// Cell returns the cell at p.
func (m *Map) Cell(p grid.Point) Cell { return m.cells.Get(p) }

// ExpandedRow reports whether row r is expanded.
func (m *Map) ExpandedRow(r int) bool { return m.rowExpanded[r] }

// ExpandedCol reports whether column c is expanded.
func (m *Map) ExpandedCol(c int) bool { return m.colExpanded[c] }

// Render formats the map with '#' for markers, ':' for expanded cells and
// '.' for plain empty cells.
func (m *Map) Render() string {
	return m.cells.Render(Cell.Rune)
}
