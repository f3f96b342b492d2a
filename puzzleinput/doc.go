// Package puzzleinput supplies puzzle text to the solvers.
//
// The engines never fetch or cache input themselves; they take a string.
// A Source turns a puzzle day into that string. Dir reads files laid out as
//
//	<root>/01.txt
//	<root>/10.txt
//	...
//
// Errors:
//
//   - ErrBadDay: day outside 1..25 or an unparsable file name.
//   - ErrNotFound: no input file for the requested day.
package puzzleinput
