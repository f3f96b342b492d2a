package looptrace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/tile"
)

// ErrNotExit is returned when a walk is requested toward a direction that
// does not lead from Start into the loop.
var ErrNotExit = errors.New("looptrace: direction is not an exit of start")

// New locates the Start tile of g and the two directions through which it
// connects to pipes.
//
// Preconditions (in order):
//  1. g is non-nil.
//  2. g holds exactly one Start tile.
//  3. Exactly two of Start's neighbors are pipes that accept a walker coming
//     from Start.
//
// Any violation returns an error wrapping ErrStructuralViolation.
// Complexity: O(W×H).
func New(g *grid.Grid[tile.Tile]) (*Tracer, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrStructuralViolation)
	}

	starts := g.FindAll(func(t tile.Tile) bool { return t.Kind == tile.Start })
	switch len(starts) {
	case 0:
		return nil, fmt.Errorf("%w: no start tile", ErrStructuralViolation)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d start tiles at %v", ErrStructuralViolation, len(starts), starts)
	}
	start := starts[0]

	// Probe each neighbor; a pipe connects when it can be entered through
	// the side facing Start.
	var exits []tile.Direction
	for _, d := range tile.Directions {
		p, ok := g.Neighbor(start, d)
		if !ok {
			continue
		}
		if g.Get(p).ValidFrom(d.Opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return nil, fmt.Errorf("%w: start %v connects to %d pipes %v, want 2",
			ErrStructuralViolation, start, len(exits), exits)
	}

	return &Tracer{g: g, start: start, exits: [2]tile.Direction{exits[0], exits[1]}}, nil
}

// Start returns a ref to the Start tile.
func (t *Tracer) Start() TileRef {
	return TileRef{g: t.g, pos: t.start}
}

// Exits returns the two directions leading from Start into the loop, in
// probe order (North, South, West, East).
func (t *Tracer) Exits() [2]tile.Direction {
	return t.exits
}

// StartShape returns the pipe shape hidden under the Start tile.
func (t *Tracer) StartShape() tile.Shape {
	s, _ := tile.ShapeOf(t.exits[0], t.exits[1])
	return s
}

// isExit reports whether d is one of Start's exits.
func (t *Tracer) isExit(d tile.Direction) bool {
	return d == t.exits[0] || d == t.exits[1]
}

// Walk returns a lazy walker that follows the loop out of Start toward out.
// The first tile it yields is Start's neighbor in that direction.
func (t *Tracer) Walk(out tile.Direction) *Walker {
	w := &Walker{limit: t.g.Len()}
	if !t.isExit(out) {
		w.fail(fmt.Errorf("%w: %v (exits are %v)", ErrNotExit, out, t.exits))
		return w
	}
	first, _ := t.Start().Toward(out)
	w.pending = first
	w.from = out.Opposite()
	return w
}

// MeetingStep advances walks toward first and second in lock-step and
// returns the 1-based step at which both stand on the same tile.
// first and second must be the two distinct exits of Start.
func (t *Tracer) MeetingStep(first, second tile.Direction) (int, error) {
	if first == second {
		return 0, fmt.Errorf("%w: both walks head %v", ErrNotExit, first)
	}
	a, b := t.Walk(first), t.Walk(second)

	for n := 1; ; n++ {
		okA, okB := a.Next(), b.Next()
		if !okA || !okB {
			if err := errors.Join(a.Err(), b.Err()); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: walks toward %v and %v returned to start without meeting",
				ErrStructuralViolation, first, second)
		}
		if a.Tile().Equal(b.Tile()) {
			return n, nil
		}
	}
}

// HalfLength returns the distance from Start to the farthest tile on the
// loop, measured along the loop. It equals half the loop's tile count.
// Complexity: O(L) time, O(1) memory.
func (t *Tracer) HalfLength() (int, error) {
	return t.MeetingStep(t.exits[0], t.exits[1])
}

// Loop returns every tile of the loop in walking order, starting with Start
// and leaving through the first exit.
func (t *Tracer) Loop() ([]grid.Point, error) {
	pts := []grid.Point{t.start}
	w := t.Walk(t.exits[0])
	for w.Next() {
		pts = append(pts, w.Tile().Point())
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// Members returns the set of coordinates that lie on the loop.
func (t *Tracer) Members() (map[grid.Point]struct{}, error) {
	pts, err := t.Loop()
	if err != nil {
		return nil, err
	}
	set := make(map[grid.Point]struct{}, len(pts))
	for _, p := range pts {
		set[p] = struct{}{}
	}
	return set, nil
}

// Sanitize returns a copy of the traced grid in which every tile that is
// not on the loop is replaced by Ground.
func (t *Tracer) Sanitize() (*grid.Grid[tile.Tile], error) {
	members, err := t.Members()
	if err != nil {
		return nil, err
	}
	return t.g.Map(func(p grid.Point, v tile.Tile) tile.Tile {
		if _, ok := members[p]; ok {
			return v
		}
		return tile.GroundTile
	}), nil
}

// Sanitize traces g and returns a copy with every off-loop tile replaced by
// Ground. Applying it to its own output returns an equal grid.
func Sanitize(g *grid.Grid[tile.Tile]) (*grid.Grid[tile.Tile], error) {
	t, err := New(g)
	if err != nil {
		return nil, err
	}
	return t.Sanitize()
}

// EnclosedArea counts the tiles strictly inside the loop.
//
// The loop's tile centers form a simple lattice polygon. Its doubled area
// comes from the shoelace formula, and Pick's theorem A = I + B/2 - 1 with
// B = loop length gives the interior count I.
// Complexity: O(L).
func (t *Tracer) EnclosedArea() (int, error) {
	pts, err := t.Loop()
	if err != nil {
		return 0, err
	}
	twice := 0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		twice += p.Row*q.Col - q.Row*p.Col
	}
	if twice < 0 {
		twice = -twice
	}
	return (twice - len(pts) + 2) / 2, nil
}
