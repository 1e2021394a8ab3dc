package mazetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedalab/mazegen/core"
)

// sizes covers the degenerate single cell, single-row and single-column
// strips, the smallest square, an odd rectangle, and a grid large
// enough for distinct seeds to diverge.
var sizes = []struct {
	width  int
	height int
}{
	{1, 1},
	{1, 8},
	{8, 1},
	{2, 2},
	{5, 4},
	{16, 16},
}

// Run exercises the complete generator contract against g: one subtest
// per property. Algorithm packages call it once and add their own
// algorithm-specific tests alongside.
func Run(t *testing.T, g core.Generator) {
	t.Helper()

	t.Run("FieldCount", func(t *testing.T) { FieldCount(t, g) })
	t.Run("PassageSymmetry", func(t *testing.T) { PassageSymmetry(t, g) })
	t.Run("BorderSealed", func(t *testing.T) { BorderSealed(t, g) })
	t.Run("SpanningTree", func(t *testing.T) { SpanningTree(t, g) })
	t.Run("StartGoalBounds", func(t *testing.T) { StartGoalBounds(t, g) })
	t.Run("MetadataStamped", func(t *testing.T) { MetadataStamped(t, g) })
	t.Run("Determinism", func(t *testing.T) { Determinism(t, g) })
	t.Run("InvalidDimensions", func(t *testing.T) { InvalidDimensions(t, g) })
	t.Run("SingleCell", func(t *testing.T) { SingleCell(t, g) })
	t.Run("AccessorBounds", func(t *testing.T) { AccessorBounds(t, g) })
	t.Run("Unseeded", func(t *testing.T) { Unseeded(t, g) })
}

// generate builds one seeded maze or fails the test immediately.
func generate(t *testing.T, g core.Generator, width, height int, seed int64) *core.Maze {
	t.Helper()

	m, err := g.Generate(width, height, core.WithSeed(seed))
	require.NoError(t, err, "%s.Generate(%d, %d, seed %d)", g.Algorithm(), width, height, seed)
	require.NotNil(t, m)

	return m
}

// FieldCount verifies every coordinate in [0,width)×[0,height) resolves
// to exactly one field carrying its own coordinate.
func FieldCount(t *testing.T, g core.Generator) {
	t.Helper()

	for _, s := range sizes {
		m := generate(t, g, s.width, s.height, 42)
		assert.Equal(t, s.width*s.height, m.Size())

		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				c := core.Coordinate{X: x, Y: y}
				f, err := m.FieldAt(c)
				require.NoError(t, err, "%d×%d FieldAt%s", s.width, s.height, c)
				assert.Equal(t, c, f.Coord())
			}
		}
	}
}

// PassageSymmetry verifies a passage open from A toward D is mirrored
// from A+D back toward D's opposite, for every cell and direction.
func PassageSymmetry(t *testing.T, g core.Generator) {
	t.Helper()

	for _, s := range sizes {
		m := generate(t, g, s.width, s.height, 43)

		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				c := core.Coordinate{X: x, Y: y}
				for _, d := range core.AllDirections() {
					if !m.HasPassage(c, d) {
						continue
					}
					assert.True(t, m.HasPassage(c.Move(d), d.Opposite()),
						"%d×%d: passage %s→%s not mirrored", s.width, s.height, c, d)
				}
			}
		}
	}
}

// BorderSealed verifies no passage leads out of the grid.
func BorderSealed(t *testing.T, g core.Generator) {
	t.Helper()

	for _, s := range sizes {
		m := generate(t, g, s.width, s.height, 44)

		for x := 0; x < s.width; x++ {
			assert.False(t, m.HasPassage(core.Coordinate{X: x, Y: 0}, core.North),
				"%d×%d: north border open at x=%d", s.width, s.height, x)
			assert.False(t, m.HasPassage(core.Coordinate{X: x, Y: s.height - 1}, core.South),
				"%d×%d: south border open at x=%d", s.width, s.height, x)
		}
		for y := 0; y < s.height; y++ {
			assert.False(t, m.HasPassage(core.Coordinate{X: 0, Y: y}, core.West),
				"%d×%d: west border open at y=%d", s.width, s.height, y)
			assert.False(t, m.HasPassage(core.Coordinate{X: s.width - 1, Y: y}, core.East),
				"%d×%d: east border open at y=%d", s.width, s.height, y)
		}
	}
}

// SpanningTree verifies the classic perfect-maze property: the passage
// graph is fully connected with exactly Size()-1 passages, hence
// acyclic. Every generator in this module guarantees it.
func SpanningTree(t *testing.T, g core.Generator) {
	t.Helper()

	for _, s := range sizes {
		m := generate(t, g, s.width, s.height, 45)

		assert.Equal(t, m.Size()-1, m.PassageCount(),
			"%d×%d: passage count", s.width, s.height)
		assert.Equal(t, m.Size(), reachableFrom(m, m.Start()),
			"%d×%d: cells reachable from start", s.width, s.height)
	}
}

// reachableFrom counts cells reachable from c over open passages.
func reachableFrom(m *core.Maze, c core.Coordinate) int {
	seen := map[core.Coordinate]bool{c: true}
	queue := []core.Coordinate{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range core.AllDirections() {
			next := cur.Move(d)
			if m.HasPassage(cur, d) && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(seen)
}

// StartGoalBounds verifies both endpoints resolve to fields and that
// they differ whenever the maze has more than one cell.
func StartGoalBounds(t *testing.T, g core.Generator) {
	t.Helper()

	for _, s := range sizes {
		m := generate(t, g, s.width, s.height, 46)

		_, err := m.FieldAt(m.Start())
		assert.NoError(t, err, "%d×%d: start %s", s.width, s.height, m.Start())
		_, err = m.FieldAt(m.Goal())
		assert.NoError(t, err, "%d×%d: goal %s", s.width, s.height, m.Goal())

		if m.Size() > 1 {
			assert.NotEqual(t, m.Start(), m.Goal(),
				"%d×%d: start and goal coincide", s.width, s.height)
		}
	}
}

// GoalFarthest verifies the goal sits at the breadth-first farthest
// cell from the start, scanned in canonical direction order. Not part
// of Run: only the algorithms documented with that goal policy opt in.
func GoalFarthest(t *testing.T, g core.Generator) {
	t.Helper()

	for _, seed := range []int64{3, 11} {
		m := generate(t, g, 7, 5, seed)
		assert.Equal(t, farthestFrom(m, m.Start()), m.Goal(), "seed %d", seed)
	}
}

// farthestFrom mirrors the goal-placement scan over maze accessors:
// breadth-first in canonical direction order, last cell dequeued wins.
func farthestFrom(m *core.Maze, start core.Coordinate) core.Coordinate {
	seen := map[core.Coordinate]bool{start: true}
	queue := []core.Coordinate{start}
	last := start
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		last = cur
		for _, d := range core.AllDirections() {
			next := cur.Move(d)
			if m.HasPassage(cur, d) && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	return last
}

// MetadataStamped verifies the maze records its producing algorithm and
// seeding mode.
func MetadataStamped(t *testing.T, g core.Generator) {
	t.Helper()

	m := generate(t, g, 5, 4, 47)
	meta := m.Meta()
	assert.Equal(t, g.Algorithm(), meta.Algorithm)
	assert.True(t, meta.Seeded)
	assert.Equal(t, int64(47), meta.Seed)
	assert.NotZero(t, meta.Checksum)
	assert.NotEqual(t, [16]byte{}, [16]byte(meta.ID))
}

// Determinism verifies the seeding contract: equal dimensions and seed
// give field-for-field identical mazes on every size, and two distinct
// seeds diverge on a grid large enough to make a collision absurd.
func Determinism(t *testing.T, g core.Generator) {
	t.Helper()

	for _, s := range sizes {
		a := generate(t, g, s.width, s.height, 42)
		b := generate(t, g, s.width, s.height, 42)

		assert.True(t, a.Equal(b), "%d×%d: same seed, different mazes", s.width, s.height)
		assert.Equal(t, a.Meta().Checksum, b.Meta().Checksum)
		assert.Equal(t, a.Meta().ID, b.Meta().ID)
		assert.Equal(t, a.Start(), b.Start())
		assert.Equal(t, a.Goal(), b.Goal())
	}

	big1 := generate(t, g, 16, 16, 1)
	big2 := generate(t, g, 16, 16, 2)
	assert.False(t, big1.Equal(big2), "16×16: seeds 1 and 2 carved identical mazes")
}

// InvalidDimensions verifies non-positive dimensions fail with
// ErrInvalidDimensions, seeded or not, and never panic.
func InvalidDimensions(t *testing.T, g core.Generator) {
	t.Helper()

	cases := []struct{ width, height int }{
		{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -2},
	}
	for _, tc := range cases {
		m, err := g.Generate(tc.width, tc.height, core.WithSeed(42))
		assert.Nil(t, m, "Generate(%d, %d)", tc.width, tc.height)
		assert.ErrorIs(t, err, core.ErrInvalidDimensions, "Generate(%d, %d)", tc.width, tc.height)

		m, err = g.Generate(tc.width, tc.height)
		assert.Nil(t, m, "unseeded Generate(%d, %d)", tc.width, tc.height)
		assert.ErrorIs(t, err, core.ErrInvalidDimensions, "unseeded Generate(%d, %d)", tc.width, tc.height)
	}
}

// SingleCell verifies the 1×1 degenerate case: one field, start equals
// goal, zero passages.
func SingleCell(t *testing.T, g core.Generator) {
	t.Helper()

	m := generate(t, g, 1, 1, 42)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, core.Coordinate{X: 0, Y: 0}, m.Start())
	assert.Equal(t, m.Start(), m.Goal())
	assert.Zero(t, m.PassageCount())
}

// AccessorBounds verifies FieldAt rejects coordinates outside the grid
// on every side of a valid maze.
func AccessorBounds(t *testing.T, g core.Generator) {
	t.Helper()

	m := generate(t, g, 3, 2, 42)
	outside := []core.Coordinate{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2},
	}
	for _, c := range outside {
		_, err := m.FieldAt(c)
		assert.ErrorIs(t, err, core.ErrOutOfBounds, "FieldAt%s", c)
	}
}

// Unseeded verifies entropy-seeded runs succeed, mark themselves
// non-reproducible, and record a replayable seed.
func Unseeded(t *testing.T, g core.Generator) {
	t.Helper()

	m, err := g.Generate(4, 4)
	require.NoError(t, err)
	require.NotNil(t, m)

	meta := m.Meta()
	assert.False(t, meta.Seeded)
	assert.Equal(t, g.Algorithm(), meta.Algorithm)

	// The recorded entropy seed must replay the identical maze.
	replay, err := g.Generate(4, 4, core.WithSeed(meta.Seed))
	require.NoError(t, err)
	assert.True(t, m.Equal(replay), "entropy seed %d did not replay", meta.Seed)
}
