package tile

import "fmt"

// ports is the single source of truth for which directions a Shape joins.
// ValidFrom, ConnectsTo and ShapeOf are all derived from it.
var ports = [numShapes][2]Direction{
	NorthSouth: {North, South},
	WestEast:   {West, East},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthWest:  {South, West},
	SouthEast:  {South, East},
}

// shapeRunes maps every Shape to its legend rune.
var shapeRunes = [numShapes]rune{
	NorthSouth: '|',
	WestEast:   '-',
	NorthEast:  'L',
	NorthWest:  'J',
	SouthWest:  '7',
	SouthEast:  'F',
}

// Shapes returns all six pipe shapes in declaration order.
func Shapes() []Shape {
	out := make([]Shape, 0, numShapes)
	for s := Shape(0); s < numShapes; s++ {
		out = append(out, s)
	}
	return out
}

// Ports returns the two directions joined by s.
func (s Shape) Ports() (Direction, Direction) {
	p := ports[s]
	return p[0], p[1]
}

// Rune returns the legend rune of s.
func (s Shape) Rune() rune {
	return shapeRunes[s]
}

// String returns the legend rune of s as a string.
func (s Shape) String() string {
	return string(s.Rune())
}

// ShapeOf returns the Shape joining a and b, in either order.
// It reports false when a == b or either direction is invalid.
func ShapeOf(a, b Direction) (Shape, bool) {
	for s, p := range ports {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return Shape(s), true
		}
	}
	return 0, false
}

// PipeTile returns a Pipe tile of shape s.
func PipeTile(s Shape) Tile {
	return Tile{Kind: Pipe, Shape: s}
}

// IsPipe reports whether t is a Pipe tile.
func (t Tile) IsPipe() bool {
	return t.Kind == Pipe
}

// ValidFrom reports whether a walker arriving through side from may enter t.
// Only pipes with from among their ports can be entered.
func (t Tile) ValidFrom(from Direction) bool {
	if t.Kind != Pipe {
		return false
	}
	p := ports[t.Shape]
	return p[0] == from || p[1] == from
}

// ConnectsTo returns the direction a walker continues toward after arriving
// at t through side from. It reports false when t cannot be entered from
// that side, which includes every Ground and Start tile.
func (t Tile) ConnectsTo(from Direction) (Direction, bool) {
	if !t.ValidFrom(from) {
		return 0, false
	}
	p := ports[t.Shape]
	if p[0] == from {
		return p[1], true
	}
	return p[0], true
}

// Rune returns the legend rune for t.
func (t Tile) Rune() rune {
	switch t.Kind {
	case Start:
		return 'S'
	case Pipe:
		return t.Shape.Rune()
	default:
		return '.'
	}
}

// String returns the legend rune of t as a string.
func (t Tile) String() string {
	return string(t.Rune())
}

// Decode converts a legend rune into a Tile.
// Runes outside the legend yield an error wrapping ErrMalformedTile.
func Decode(r rune) (Tile, error) {
	switch r {
	case '.':
		return GroundTile, nil
	case 'S':
		return StartTile, nil
	}
	for s, sr := range shapeRunes {
		if sr == r {
			return PipeTile(Shape(s)), nil
		}
	}
	return GroundTile, fmt.Errorf("%w: %q", ErrMalformedTile, r)
}
