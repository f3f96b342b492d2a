package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for galaxy operations.
var (
	// ErrMalformedCell indicates an input rune other than '.' or '#'.
	ErrMalformedCell = errors.New("galaxy: malformed cell")

	// ErrNilMap indicates a nil *Map was supplied.
	ErrNilMap = errors.New("galaxy: map is nil")

	// ErrOutOfBounds indicates a path endpoint outside the grid.
	ErrOutOfBounds = errors.New("galaxy: point out of bounds")

	// ErrUnreachable indicates the search ran out of frontier before popping
	// the goal.
	ErrUnreachable = errors.New("galaxy: goal unreachable")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("galaxy: invalid option supplied")
)

// Cell is a single grid cell.
type Cell uint8

const (
	// Empty is open space with unit cost.
	Empty Cell = iota
	// ExpandedEmpty is open space on an expanded row or column.
	ExpandedEmpty
	// Marker is a galaxy.
	Marker
)

// Rune returns the display rune of c.
func (c Cell) Rune() rune {
	switch c {
	case Marker:
		return '#'
	case ExpandedEmpty:
		return ':'
	default:
		return '.'
	}
}

// DecodeCell converts an input rune into a Cell.
func DecodeCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return Empty, nil
	case '#':
		return Marker, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrMalformedCell, r)
	}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Heuristic estimates the remaining cost from a cell to the goal. It must be
// consistent (never drop by more than the cost of a single move, and zero at
// the goal), or ShortestPath may return a non-minimal cost.
type Heuristic func(from, goal grid.Point) int64

// Zero is the trivial heuristic; A* with it is uniform-cost search.
func Zero(grid.Point, grid.Point) int64 { return 0 }

// Chebyshev returns max(|Δrow|, |Δcol|). Every move costs at least 1 and
// shifts each axis by at most one, so it is consistent for any Factor.
func Chebyshev(from, goal grid.Point) int64 {
	dr, dc := from.Row-goal.Row, from.Col-goal.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return int64(max(dr, dc))
}

// Options configures a Finder.
//
//	Factor     cost multiplier of expanded rows and columns (>= 1, default 2)
//	Conn       move set, Conn8 by default
//	Heuristic  A* estimate, Zero by default
//	MaxCost    frontier entries costlier than this are not explored
//	           (>= 0, default math.MaxInt64)
type Options struct {
	Factor    int64
	Conn      Connectivity
	Heuristic Heuristic
	MaxCost   int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns Factor=2, Conn8, the Zero heuristic and no cost cap.
func DefaultOptions() Options {
	return Options{
		Factor:    2,
		Conn:      Conn8,
		Heuristic: Zero,
		MaxCost:   math.MaxInt64,
	}
}

// WithFactor sets the cost of crossing an expanded line. k < 1 is recorded
// as ErrOptionViolation; NewFinder also rejects a k too large for the map.
func WithFactor(k int64) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Factor must be at least 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Factor = k
	}
}

// WithConnectivity selects Conn4 or Conn8 moves.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithHeuristic sets the A* estimate. A nil h keeps the current one.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxCost stops the search from expanding cells costlier than c.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}
