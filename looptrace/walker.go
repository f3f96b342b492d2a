package looptrace

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridwalk/tile"
)

// walkState tracks whether a Walker can still advance.
type walkState uint8

const (
	walking walkState = iota
	closed            // arrived back at Start
	failed            // malformed input, see err
)

// Walker follows pipes one tile per Next call. It is created by
// Tracer.Walk and is not safe for concurrent use.
type Walker struct {
	pending TileRef        // tile to yield on the next call
	from    tile.Direction // side pending is entered through
	current TileRef
	steps   int
	limit   int
	state   walkState
	err     error
}

// Next advances to the next tile of the loop. It returns false once the walk
// arrives back at Start or fails; Err distinguishes the two.
func (w *Walker) Next() bool {
	if w.state != walking {
		return false
	}

	// 1) Arriving back at Start closes the loop.
	ref := w.pending
	if ref.Tile().Kind == tile.Start {
		w.state = closed
		return false
	}

	// 2) The pipe must accept the side we enter through and lead somewhere
	// on the grid.
	out, ok := ref.NextDir(w.from)
	if !ok {
		w.fail(fmt.Errorf("%w: dead end at %v entered from %v", ErrStructuralViolation, ref, w.from))
		return false
	}
	next, ok := ref.Toward(out)
	if !ok {
		w.fail(fmt.Errorf("%w: pipe at %v leads off the grid toward %v", ErrStructuralViolation, ref, out))
		return false
	}

	// 3) A walk longer than the grid has cells cannot be a loop.
	if w.steps >= w.limit {
		w.fail(fmt.Errorf("%w: walk exceeded %d steps", ErrStructuralViolation, w.limit))
		return false
	}

	// 4) Yield ref and enter next from the side facing ref.
	w.current = ref
	w.steps++
	w.pending = next
	w.from = out.Opposite()

	return true
}

// Tile returns the tile reached by the most recent successful Next.
func (w *Walker) Tile() TileRef { return w.current }

// Steps returns how many tiles have been yielded so far.
func (w *Walker) Steps() int { return w.steps }

// Closed reports whether the walk ended by arriving back at Start.
func (w *Walker) Closed() bool { return w.state == closed }

// Err returns the error that stopped the walk, or nil.
func (w *Walker) Err() error { return w.err }

func (w *Walker) fail(err error) {
	w.state = failed
	w.err = err
}

// Seq exposes a walk toward out as a range-over-func sequence. A walk that
// fails yields one final zero TileRef together with the error.
func (t *Tracer) Seq(out tile.Direction) iter.Seq2[TileRef, error] {
	return func(yield func(TileRef, error) bool) {
		w := t.Walk(out)
		for w.Next() {
			if !yield(w.Tile(), nil) {
				return
			}
		}
		if err := w.Err(); err != nil {
			yield(TileRef{}, err)
		}
	}
}
