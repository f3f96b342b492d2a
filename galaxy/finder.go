package galaxy

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/grid"
)

// Precomputed move sets, indexed by Connectivity.
var moves = [...][][2]int{
	Conn4: {{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	Conn8: {{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}},
}

// Finder answers least-cost queries over a Map. It only reads the Map and
// holds no per-query state, so one Finder may serve any number of queries.
type Finder struct {
	m    *Map
	opts Options
}

// NewFinder validates opts and returns a Finder over m.
//
// Factor is also checked against the size of m: any cost the search can
// produce must stay below the math.MaxInt64 sentinel, so a Factor above
// (math.MaxInt64-1) / (2*(Rows+Cols+2)) is rejected with ErrOptionViolation.
func NewFinder(m *Map, opts ...Option) (*Finder, error) {
	// 1) Validate the map.
	if m == nil {
		return nil, ErrNilMap
	}

	// 2) Apply options on top of the defaults; stop on the first recorded error.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Bound Factor by the grid span. A least-cost path never needs more
	// than Rows+Cols steps, each costing at most 2*Factor.
	span := 2 * (int64(m.cells.Rows()) + int64(m.cells.Cols()) + 2)
	if limit := (math.MaxInt64 - 1) / span; cfg.Factor > limit {
		return nil, fmt.Errorf("%w: Factor %d overflows costs on a %dx%d map (max %d)",
			ErrOptionViolation, cfg.Factor, m.cells.Rows(), m.cells.Cols(), limit)
	}

	return &Finder{m: m, opts: cfg}, nil
}

// Options returns the resolved configuration.
func (f *Finder) Options() Options { return f.opts }

// StepCost returns the cost of moving from one cell to an adjacent one.
// Only the destination's row and column are consulted.
func (f *Finder) StepCost(from, to grid.Point) int64 {
	rowExp, colExp := f.m.rowExpanded[to.Row], f.m.colExpanded[to.Col]
	if from.Row != to.Row && from.Col != to.Col {
		return f.axisCost(rowExp) + f.axisCost(colExp)
	}
	return f.axisCost(rowExp || colExp)
}

func (f *Finder) axisCost(expanded bool) int64 {
	if expanded {
		return f.opts.Factor
	}
	return 1
}

// ShortestPath returns the least cost of travelling from one cell to
// another.
//
// The search pops cells in order of cost plus heuristic and stops as soon
// as it pops the goal. It returns ErrOutOfBounds for endpoints outside the
// grid and ErrUnreachable when the frontier empties first, which on a full
// grid only happens when MaxCost cuts the search short.
func (f *Finder) ShortestPath(from, to grid.Point) (int64, error) {
	if err := f.checkBounds(from, to); err != nil {
		return 0, err
	}
	r := f.newRunner(to)
	r.init(from)
	if !r.process() {
		return 0, fmt.Errorf("%w: %v -> %v", ErrUnreachable, from, to)
	}
	return r.dist[f.m.cells.Index(to)], nil
}

// Distances returns the least cost from one cell to every cell, indexed
// row-major. Cells beyond MaxCost hold math.MaxInt64.
func (f *Finder) Distances(from grid.Point) ([]int64, error) {
	if err := f.checkBounds(from); err != nil {
		return nil, err
	}
	r := f.newRunner(grid.Point{Row: -1, Col: -1})
	r.init(from)
	r.process()
	return r.dist, nil
}

// SumPairs returns the sum of least costs over ix.Pairs(). One full search
// is run per distinct Lower id and reused for all of its pairs. A total that
// does not fit in int64 is reported as ErrOptionViolation, since only a
// smaller Factor can bring it back in range.
func (f *Finder) SumPairs(ix *Index) (int64, error) {
	var (
		total int64
		cur   ID = -1
		dist  []int64
		err   error
	)
	for _, p := range ix.Pairs() {
		if p.Lower != cur {
			cur = p.Lower
			if dist, err = f.Distances(ix.Point(cur)); err != nil {
				return 0, err
			}
		}
		to := ix.Point(p.Higher)
		if err = f.checkBounds(to); err != nil {
			return 0, err
		}
		d := dist[f.m.cells.Index(to)]
		if d == math.MaxInt64 {
			return 0, fmt.Errorf("%w: marker %d -> marker %d", ErrUnreachable, p.Lower, p.Higher)
		}
		if d > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: pair cost sum overflows int64 at Factor %d",
				ErrOptionViolation, f.opts.Factor)
		}
		total += d
	}
	return total, nil
}

// SumPairs indexes the markers of m and returns the sum of least costs over
// every marker pair, using a Finder configured with opts.
func SumPairs(m *Map, opts ...Option) (int64, error) {
	f, err := NewFinder(m, opts...)
	if err != nil {
		return 0, err
	}
	return f.SumPairs(NewIndex(m))
}

func (f *Finder) checkBounds(pts ...grid.Point) error {
	for _, p := range pts {
		if !f.m.cells.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	return nil
}

//----------------------------------------------------------------------------//
// Search runner
//----------------------------------------------------------------------------//

// runner holds the mutable state of a single search.
type runner struct {
	f       *Finder
	goal    grid.Point // {-1,-1} for a full single-source search
	dist    []int64    // row-major cell index → best known cost
	visited []bool     // finalized cells
	pq      nodePQ
}

func (f *Finder) newRunner(goal grid.Point) *runner {
	n := f.m.cells.Len()
	return &runner{
		f:       f,
		goal:    goal,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to +∞ and pushes the source with cost 0.
func (r *runner) init(src grid.Point) {
	// 1) Initialize dist[i] = +∞ (MaxInt64) for every cell.
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
	}

	// 2) Cost to the source is zero.
	s := r.f.m.cells.Index(src)
	r.dist[s] = 0

	// 3) Initialize the frontier and push the source, prioritized by its estimate.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: s, cost: 0, prio: r.estimate(src)})
}

func (r *runner) estimate(p grid.Point) int64 {
	if r.goal.Row < 0 {
		return 0
	}
	return r.f.opts.Heuristic(p, r.goal)
}

// process pops cells until the goal is popped (returns true) or the
// frontier is exhausted or exceeds MaxCost (returns false).
func (r *runner) process() bool {
	cells := r.f.m.cells
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest priority.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale entries left by lazy decrease-key.
		if r.visited[u] {
			continue
		}

		// 3) Past MaxCost nothing cheaper remains; stop exploring.
		if item.cost > r.f.opts.MaxCost {
			break
		}

		// 4) Finalize u. With a consistent heuristic its cost is now least.
		r.visited[u] = true

		// 5) Stop at the goal, otherwise relax the neighbors of u.
		p := cells.Coordinate(u)
		if p == r.goal {
			return true
		}
		r.relax(p)
	}
	return false
}

// relax tries to improve every neighbor of p.
func (r *runner) relax(p grid.Point) {
	cells := r.f.m.cells
	base := r.dist[cells.Index(p)]

	// 1) Visit each move of the configured connectivity.
	for _, d := range moves[r.f.opts.Conn] {
		// 2) Skip moves leaving the grid and cells already finalized.
		q, ok := cells.Offset(p, d[0], d[1])
		if !ok {
			continue
		}
		v := cells.Index(q)
		if r.visited[v] {
			continue
		}

		// 3) Candidate cost. NewFinder bounded Factor, so this cannot overflow.
		nd := base + r.f.StepCost(p, q)

		// 4) Keep it only if it is within MaxCost and improves dist[v].
		if nd > r.f.opts.MaxCost || nd >= r.dist[v] {
			continue
		}

		// 5) Record and push; older entries for v become stale.
		r.dist[v] = nd
		heap.Push(&r.pq, &nodeItem{idx: v, cost: nd, prio: nd + r.estimate(q)})
	}
}

// nodeItem is a frontier entry: a cell, its cost so far and its priority
// (cost plus heuristic).
type nodeItem struct {
	idx  int
	cost int64
	prio int64
}

// nodePQ is a min-heap of *nodeItem ordered by prio, then by cost.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}
	return pq[i].cost < pq[j].cost
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
