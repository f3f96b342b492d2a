package galaxy_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/galaxy"
	"github.com/katalvlaran/gridwalk/grid"
)

// sample has nine markers, two empty rows (3, 7) and three empty
// columns (2, 5, 8).
const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....`

func mustMap(t *testing.T, text string) *galaxy.Map {
	t.Helper()
	m, err := galaxy.Parse(text)
	require.NoError(t, err)
	return m
}

//----------------------------------------------------------------------------//
// Parsing and expansion
//----------------------------------------------------------------------------//

func TestExpand(t *testing.T) {
	m := mustMap(t, sample)

	var rows, cols []int
	for r := 0; r < m.Grid().Rows(); r++ {
		if m.ExpandedRow(r) {
			rows = append(rows, r)
		}
	}
	for c := 0; c < m.Grid().Cols(); c++ {
		if m.ExpandedCol(c) {
			cols = append(cols, c)
		}
	}
	assert.Equal(t, []int{3, 7}, rows)
	assert.Equal(t, []int{2, 5, 8}, cols)

	lines := strings.Split(m.Render(), "\n")
	assert.Equal(t, "..:#.:..:.", lines[0])
	assert.Equal(t, "::::::::::", lines[3])
	assert.Equal(t, galaxy.Marker, m.Cell(grid.Point{Row: 0, Col: 3}))
	assert.Equal(t, galaxy.ExpandedEmpty, m.Cell(grid.Point{Row: 0, Col: 2}))
	assert.Equal(t, galaxy.Empty, m.Cell(grid.Point{Row: 0, Col: 0}))
}

func TestParse_Malformed(t *testing.T) {
	_, err := galaxy.Parse("..#\n.x.")
	assert.ErrorIs(t, err, galaxy.ErrMalformedCell)
	assert.ErrorIs(t, err, grid.ErrDecode)

	_, err = galaxy.Parse("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Index and pairs
//----------------------------------------------------------------------------//

func TestIndex(t *testing.T) {
	ix := galaxy.NewIndex(mustMap(t, sample))
	require.Equal(t, 9, ix.Len())
	assert.Equal(t, grid.Point{Row: 0, Col: 3}, ix.Point(0))
	assert.Equal(t, grid.Point{Row: 2, Col: 0}, ix.Point(2))
	assert.Equal(t, grid.Point{Row: 9, Col: 4}, ix.Point(8))

	pairs := ix.Pairs()
	assert.Len(t, pairs, 36)
	seen := make(map[galaxy.Pair]bool, len(pairs))
	for _, p := range pairs {
		assert.Less(t, p.Lower, p.Higher, "no self pairs, canonical order")
		assert.False(t, seen[p], "duplicate pair %v", p)
		seen[p] = true
	}

	assert.Equal(t, galaxy.Pair{Lower: 2, Higher: 5}, galaxy.NewPair(5, 2))
	assert.Equal(t, galaxy.NewPair(2, 5), galaxy.NewPair(5, 2))
	assert.Empty(t, galaxy.IndexOf(grid.Point{}).Pairs())
}

//----------------------------------------------------------------------------//
// Costs and search
//----------------------------------------------------------------------------//

func TestStepCost(t *testing.T) {
	f, err := galaxy.NewFinder(mustMap(t, sample))
	require.NoError(t, err)

	cases := []struct {
		name     string
		from, to grid.Point
		want     int64
	}{
		{"Plain", grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 1}, 1},
		{"IntoExpandedCol", grid.Point{Row: 0, Col: 1}, grid.Point{Row: 0, Col: 2}, 2},
		{"OutOfExpandedCol", grid.Point{Row: 0, Col: 2}, grid.Point{Row: 0, Col: 1}, 1},
		{"AlongExpandedRow", grid.Point{Row: 3, Col: 0}, grid.Point{Row: 3, Col: 1}, 2},
		{"DiagonalPlain", grid.Point{Row: 0, Col: 0}, grid.Point{Row: 1, Col: 1}, 2},
		{"DiagonalOneAxis", grid.Point{Row: 2, Col: 0}, grid.Point{Row: 3, Col: 1}, 3},
		{"DiagonalBothAxes", grid.Point{Row: 2, Col: 1}, grid.Point{Row: 3, Col: 2}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.StepCost(tc.from, tc.to))
		})
	}
}

func TestShortestPath(t *testing.T) {
	m := mustMap(t, sample)
	ix := galaxy.NewIndex(m)
	f, err := galaxy.NewFinder(m)
	require.NoError(t, err)

	cases := []struct {
		a, b galaxy.ID
		want int64
	}{
		{4, 8, 9},
		{0, 6, 15},
		{2, 5, 17},
		{7, 8, 5},
	}
	for _, tc := range cases {
		got, err := f.ShortestPath(ix.Point(tc.a), ix.Point(tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "markers %d -> %d", tc.a, tc.b)

		back, err := f.ShortestPath(ix.Point(tc.b), ix.Point(tc.a))
		require.NoError(t, err)
		assert.Equal(t, tc.want, back, "markers %d -> %d", tc.b, tc.a)
	}

	zero, err := f.ShortestPath(ix.Point(3), ix.Point(3))
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero)
}

// TestShortestPath_MatchesCrossings compares every pair against Manhattan
// distance plus (Factor-1) per expanded line crossed, for all move sets and
// heuristics.
func TestShortestPath_MatchesCrossings(t *testing.T) {
	m := mustMap(t, sample)
	ix := galaxy.NewIndex(m)

	for _, k := range []int64{1, 2, 10} {
		for _, conn := range []galaxy.Connectivity{galaxy.Conn4, galaxy.Conn8} {
			for _, h := range []galaxy.Heuristic{galaxy.Zero, galaxy.Chebyshev} {
				f, err := galaxy.NewFinder(m,
					galaxy.WithFactor(k),
					galaxy.WithConnectivity(conn),
					galaxy.WithHeuristic(h),
				)
				require.NoError(t, err)
				for _, p := range ix.Pairs() {
					a, b := ix.Point(p.Lower), ix.Point(p.Higher)
					got, err := f.ShortestPath(a, b)
					require.NoError(t, err)
					assert.Equal(t, crossings(m, a, b, k), got, "factor %d conn %d pair %v", k, conn, p)
				}
			}
		}
	}
}

func TestSumPairs(t *testing.T) {
	m := mustMap(t, sample)
	cases := []struct {
		factor int64
		want   int64
	}{
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tc := range cases {
		got, err := galaxy.SumPairs(m, galaxy.WithFactor(tc.factor))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "factor %d", tc.factor)
	}
}

// TestSumPairs_Relabelled: ids are arbitrary, pairing is by position.
func TestSumPairs_Relabelled(t *testing.T) {
	m := mustMap(t, sample)
	f, err := galaxy.NewFinder(m)
	require.NoError(t, err)

	pts := galaxy.NewIndex(m).Points()
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		rng.Shuffle(len(pts), func(a, b int) { pts[a], pts[b] = pts[b], pts[a] })
		got, err := f.SumPairs(galaxy.IndexOf(pts...))
		require.NoError(t, err)
		assert.Equal(t, int64(374), got)
	}
}

func TestSumPairs_Degenerate(t *testing.T) {
	got, err := galaxy.SumPairs(mustMap(t, "...\n.#.\n..."))
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = galaxy.SumPairs(mustMap(t, "...\n..."))
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

func TestUnreachable(t *testing.T) {
	m := mustMap(t, sample)
	ix := galaxy.NewIndex(m)
	f, err := galaxy.NewFinder(m, galaxy.WithMaxCost(3))
	require.NoError(t, err)

	_, err = f.ShortestPath(ix.Point(0), ix.Point(8))
	assert.ErrorIs(t, err, galaxy.ErrUnreachable)

	_, err = f.SumPairs(ix)
	assert.ErrorIs(t, err, galaxy.ErrUnreachable)

	// The nearest pair costs 5 and is still within reach of a larger cap.
	f, err = galaxy.NewFinder(m, galaxy.WithMaxCost(5))
	require.NoError(t, err)
	got, err := f.ShortestPath(ix.Point(7), ix.Point(8))
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestOutOfBounds(t *testing.T) {
	f, err := galaxy.NewFinder(mustMap(t, sample))
	require.NoError(t, err)

	_, err = f.ShortestPath(grid.Point{Row: -1, Col: 0}, grid.Point{Row: 0, Col: 0})
	assert.ErrorIs(t, err, galaxy.ErrOutOfBounds)
	_, err = f.ShortestPath(grid.Point{Row: 0, Col: 0}, grid.Point{Row: 0, Col: 10})
	assert.ErrorIs(t, err, galaxy.ErrOutOfBounds)
	_, err = f.Distances(grid.Point{Row: 10, Col: 0})
	assert.ErrorIs(t, err, galaxy.ErrOutOfBounds)
	_, err = f.SumPairs(galaxy.IndexOf(grid.Point{}, grid.Point{Row: 40, Col: 40}))
	assert.ErrorIs(t, err, galaxy.ErrOutOfBounds)
}

func TestOptions_Invalid(t *testing.T) {
	m := mustMap(t, sample)
	for name, opt := range map[string]galaxy.Option{
		"Factor":       galaxy.WithFactor(0),
		"Connectivity": galaxy.WithConnectivity(galaxy.Connectivity(7)),
		"MaxCost":      galaxy.WithMaxCost(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := galaxy.NewFinder(m, opt)
			assert.ErrorIs(t, err, galaxy.ErrOptionViolation)
		})
	}

	_, err := galaxy.NewFinder(nil)
	assert.ErrorIs(t, err, galaxy.ErrNilMap)

	f, err := galaxy.NewFinder(m, galaxy.WithHeuristic(nil))
	require.NoError(t, err)
	assert.NotNil(t, f.Options().Heuristic)
	assert.Equal(t, int64(2), f.Options().Factor)
	assert.Equal(t, galaxy.Conn8, f.Options().Conn)
}

func TestFactorOverflow(t *testing.T) {
	// A factor whose step costs reach the int64 sentinel is refused up front.
	_, err := galaxy.NewFinder(mustMap(t, "#.#"), galaxy.WithFactor(math.MaxInt64))
	assert.ErrorIs(t, err, galaxy.ErrOptionViolation)
	_, err = galaxy.SumPairs(mustMap(t, "#..#\n....\n#..#"), galaxy.WithFactor(math.MaxInt64/3))
	assert.ErrorIs(t, err, galaxy.ErrOptionViolation)

	// Six markers on one row with five expanded columns between them. Every
	// single path fits, but the pair sum 35*(k+1) does not.
	m := mustMap(t, "#.#.#.#.#.#")
	k := int64(math.MaxInt64 / 30)
	f, err := galaxy.NewFinder(m, galaxy.WithFactor(k))
	require.NoError(t, err)

	ix := galaxy.NewIndex(m)
	got, err := f.ShortestPath(ix.Point(0), ix.Point(5))
	require.NoError(t, err)
	assert.Equal(t, 5*(k+1), got)

	_, err = f.SumPairs(ix)
	assert.ErrorIs(t, err, galaxy.ErrOptionViolation)
}

// crossings is the closed-form least cost between a and b.
func crossings(m *galaxy.Map, a, b grid.Point, k int64) int64 {
	var cost int64
	for r := min(a.Row, b.Row) + 1; r <= max(a.Row, b.Row); r++ {
		cost++
		if m.ExpandedRow(r) {
			cost += k - 1
		}
	}
	for c := min(a.Col, b.Col) + 1; c <= max(a.Col, b.Col); c++ {
		cost++
		if m.ExpandedCol(c) {
			cost += k - 1
		}
	}
	return cost
}
