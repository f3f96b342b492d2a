package tile

// offsets holds the (row, col) unit step of each Direction.
var offsets = [...][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// Opposite returns the direction pointing the other way.
// Opposite(Opposite(d)) == d for every valid d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the row and column deltas of a single step toward d, or
// (0, 0) when d is not Valid.
func (d Direction) Offset() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
