package galaxy

import (
	"github.com/katalvlaran/gridwalk/grid"
)

// ID is a dense marker identifier.
type ID int

// Pair is an unordered pair of distinct marker ids stored as (Lower, Higher).
type Pair struct {
	Lower, Higher ID
}

// NewPair returns the canonical pair of a and b.
func NewPair(a, b ID) Pair {
	return Pair{Lower: min(a, b), Higher: max(a, b)}
}

// Index maps ids 0..Len()-1 to marker positions.
type Index struct {
	points []grid.Point
}

// NewIndex enumerates the markers of m in row-major order.
func NewIndex(m *Map) *Index {
	return &Index{points: m.cells.FindAll(func(c Cell) bool { return c == Marker })}
}

// IndexOf assigns id i to points[i].
func IndexOf(points ...grid.Point) *Index {
	return &Index{points: append([]grid.Point(nil), points...)}
}

// Len returns the number of markers.
func (ix *Index) Len() int { return len(ix.points) }

// Point returns the position of marker id.
func (ix *Index) Point(id ID) grid.Point { return ix.points[id] }

// Points returns a copy of every marker position, ordered by id.
func (ix *Index) Points() []grid.Point {
	return append([]grid.Point(nil), ix.points...)
}

// Pairs returns every unordered pair of distinct ids exactly once, sorted
// by Lower then Higher. n markers yield n(n-1)/2 pairs.
func (ix *Index) Pairs() []Pair {
	n := len(ix.points)
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			out = append(out, NewPair(ID(a), ID(b)))
		}
	}
	return out
}
