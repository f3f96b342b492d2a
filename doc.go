// Package gridwalk is a small engine for directional traversal of text grids:
// following a closed pipe loop tile by tile, and finding least-cost paths
// across a grid whose empty rows and columns are expensive to cross.
//
// Everything is organized under focused subpackages:
//
//	tile/         compass directions, pipe shapes and the Ground/Start/Pipe tile
//	grid/         immutable generic 2-D container with bounds-checked neighbors
//	looptrace/    Start detection, lock-step loop walking, sanitize, enclosed area
//	galaxy/       expansion marking, marker index, A* search and pair sums
//	puzzleinput/  Source interface for raw puzzle text
//	cmd/gridwalk  command-line front end
//
// Quick ASCII example:
//
//	S-7
//	|.|
//	L-J
//
// is an 8-tile loop; its farthest tile is 4 steps from S and it encloses
// one tile.
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
