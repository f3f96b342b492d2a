// Package tile models the cells of a pipe-maze grid: compass directions,
// the six pipe shapes and the Ground/Start/Pipe tile variant.
//
// What:
//
//   - Direction is one of North, South, East, West with a fixed (row, col)
//     unit offset and an Opposite.
//   - Shape is one of the six pipe pieces | - L J 7 F. Every shape connects
//     exactly two distinct directions ("ports"), declared once in a single
//     table.
//   - Tile is a small comparable value: Ground, Start or Pipe(Shape).
//
// Traversal rule:
//
//	A walker that arrived at a pipe from side d (d is the side it came
//	through, the opposite of its direction of travel) may only do so when d
//	is one of the pipe's ports; it then leaves through the other port.
//
//	    ConnectsTo(d) == (other port, true)   if d is a port
//	    ConnectsTo(d) == (_, false)           otherwise, and always for
//	                                          Ground and Start
//
// Legend:
//
//	.  Ground      S  Start
//	|  NorthSouth  -  WestEast
//	L  NorthEast   J  NorthWest
//	7  SouthWest   F  SouthEast
//
// Errors:
//
//   - ErrMalformedTile: a rune outside the legend.
package tile
