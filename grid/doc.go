// Package grid provides an immutable, rectangular 2-D container addressed by
// (row, col) with bounds-checked neighbor lookup.
//
// What:
//
//   - Grid[T] stores Rows()×Cols() cells in row-major order.
//   - Neighbor and Offset perform signed offset arithmetic and report false
//     before any out-of-range coordinate is ever dereferenced.
//   - Parse turns line-oriented text into a Grid using a per-rune decoder.
//
// Complexity:
//
//   - New, Parse, Map, Render: O(W×H) time and memory.
//   - Get, Neighbor, Offset, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDecode: the decoder rejected a rune (wraps the decoder's error).
package grid
