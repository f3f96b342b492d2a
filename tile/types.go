package tile

import "errors"

// ErrMalformedTile indicates an input rune that is not part of the tile legend.
var ErrMalformedTile = errors.New("tile: malformed tile")

// Direction is a compass direction on the grid.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// South points to the next row.
	South
	// East points to the next column.
	East
	// West points to the previous column.
	West
)

// Directions lists every Direction in the order neighbors are probed.
var Directions = [...]Direction{North, South, West, East}

// Shape is one of the six pipe pieces.
type Shape uint8

const (
	// NorthSouth is a vertical pipe '|'.
	NorthSouth Shape = iota
	// WestEast is a horizontal pipe '-'.
	WestEast
	// NorthEast is the elbow 'L'.
	NorthEast
	// NorthWest is the elbow 'J'.
	NorthWest
	// SouthWest is the elbow '7'.
	SouthWest
	// SouthEast is the elbow 'F'.
	SouthEast

	numShapes
)

// Kind tags the Tile variant.
type Kind uint8

const (
	// Ground is an empty tile; nothing passes through it.
	Ground Kind = iota
	// Start marks the walker's origin. Its shape is unknown from the input.
	Start
	// Pipe is a tile carrying a Shape.
	Pipe
)

// Tile is a single grid tile. Shape is meaningful only when Kind == Pipe.
// The zero value is Ground.
type Tile struct {
	Kind  Kind
	Shape Shape
}

// Preset tiles for the two shapeless kinds.
var (
	GroundTile = Tile{Kind: Ground}
	StartTile  = Tile{Kind: Start}
)
