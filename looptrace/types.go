package looptrace

import (
	"errors"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/tile"
)

// ErrStructuralViolation indicates the grid does not encode a valid closed
// loop through Start.
var ErrStructuralViolation = errors.New("looptrace: structural violation")

// TileRef locates a tile on a grid without owning it. Two refs are Equal
// when their coordinates match; the grid reference is not compared.
type TileRef struct {
	g   *grid.Grid[tile.Tile]
	pos grid.Point
}

// Point returns the coordinates of r.
func (r TileRef) Point() grid.Point { return r.pos }

// Tile returns the tile r points at.
func (r TileRef) Tile() tile.Tile { return r.g.Get(r.pos) }

// Equal reports whether r and o address the same coordinates.
func (r TileRef) Equal(o TileRef) bool { return r.pos == o.pos }

// String formats r as its coordinates followed by its tile rune.
func (r TileRef) String() string {
	return r.pos.String() + r.Tile().String()
}

// NextDir returns the direction to continue toward after entering r through
// side from.
func (r TileRef) NextDir(from tile.Direction) (tile.Direction, bool) {
	return r.Tile().ConnectsTo(from)
}

// Toward returns the ref one step from r toward d, or false at the grid edge.
func (r TileRef) Toward(d tile.Direction) (TileRef, bool) {
	p, ok := r.g.Neighbor(r.pos, d)
	if !ok {
		return TileRef{}, false
	}
	return TileRef{g: r.g, pos: p}, true
}

// Tracer holds the Start tile of a grid and its two exits.
// It only reads the grid and may be shared freely.
type Tracer struct {
	g     *grid.Grid[tile.Tile]
	start grid.Point
	exits [2]tile.Direction
}
