// Package galaxy computes least-cost distances between marker cells ("galaxies")
// on a grid whose empty rows and columns are expensive to cross.
//
// What:
//
//   - Parse reads a '.'/'#' grid; Expand marks every row and column that
//     holds no marker as expanded.
//   - Index assigns dense ids 0..n-1 to markers in row-major order, and
//     Pairs enumerates every unordered pair once.
//   - Finder runs A* (or uniform-cost search with the Zero heuristic) over
//     4- or 8-connected moves and sums the pairwise distances.
//
// Cost model (costs belong to the destination, never to the source):
//
//	orthogonal move   Factor if the destination row or column is expanded,
//	                  else 1
//	diagonal move     rowCost + colCost, where each axis costs Factor when
//	                  the destination line on that axis is expanded, else 1
//
// A diagonal step is therefore never cheaper than the two orthogonal steps
// it replaces, and the least cost between two markers equals their
// Manhattan distance with every expanded line crossed counted Factor times.
//
// Complexity:
//
//   - ShortestPath, Distances: O(N log N) for N = W×H cells.
//   - SumPairs: O(M × N log N) for M markers (one full search per marker).
//
// Errors:
//
//   - ErrMalformedCell: a rune other than '.' or '#'.
//   - ErrOutOfBounds: an endpoint outside the grid.
//   - ErrUnreachable: the goal was not reached within MaxCost.
//   - ErrOptionViolation: an invalid Option.
package galaxy
