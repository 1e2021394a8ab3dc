package wilson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/mazetest"
	"github.com/daedalab/mazegen/wilson"
)

func TestWilson_Contract(t *testing.T) {
	mazetest.Run(t, wilson.New())
}

func TestWilson_AlgorithmName(t *testing.T) {
	assert.Equal(t, "wilson", wilson.New().Algorithm())
}

// TestWilson_StartIsOrigin pins the documented fixed-start policy.
func TestWilson_StartIsOrigin(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		m, err := wilson.New().Generate(6, 4, core.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, core.Coordinate{X: 0, Y: 0}, m.Start(), "seed %d", seed)
	}
}

// TestWilson_GoalIsFarthestFromStart recomputes the documented goal
// policy from the finished maze.
func TestWilson_GoalIsFarthestFromStart(t *testing.T) {
	mazetest.GoalFarthest(t, wilson.New())
}

// TestWilson_StripIsCorridor verifies the walks degenerate to a single
// corridor on one-dimensional grids.
func TestWilson_StripIsCorridor(t *testing.T) {
	wide, err := wilson.New().Generate(6, 1, core.WithSeed(13))
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		assert.True(t, wide.HasPassage(core.Coordinate{X: x, Y: 0}, core.East), "column %d", x)
	}
	assert.Equal(t, core.Coordinate{X: 5, Y: 0}, wide.Goal())

	tall, err := wilson.New().Generate(1, 6, core.WithSeed(13))
	require.NoError(t, err)
	for y := 0; y < 5; y++ {
		assert.True(t, tall.HasPassage(core.Coordinate{X: 0, Y: y}, core.South), "row %d", y)
	}
	assert.Equal(t, core.Coordinate{X: 0, Y: 5}, tall.Goal())
}

func TestWilson_GeneratorIsReusable(t *testing.T) {
	g := wilson.New()

	first, err := g.Generate(9, 6, core.WithSeed(21))
	require.NoError(t, err)
	second, err := g.Generate(9, 6, core.WithSeed(21))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}
