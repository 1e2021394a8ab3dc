package growtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/growtree"
	"github.com/daedalab/mazegen/mazetest"
)

var allMethods = []growtree.SelectionMethod{
	growtree.SelectOldest,
	growtree.SelectNewest,
	growtree.SelectRandom,
}

func TestGrowTree_Contract(t *testing.T) {
	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			mazetest.Run(t, growtree.New(growtree.WithSelection(method)))
		})
	}
}

func TestGrowTree_AlgorithmName(t *testing.T) {
	assert.Equal(t, "growtree", growtree.New().Algorithm())
}

func TestGrowTree_DefaultSelection(t *testing.T) {
	assert.Equal(t, growtree.SelectOldest, growtree.New().Selection())
}

func TestGrowTree_WithSelection_PanicsOnUnknown(t *testing.T) {
	assert.PanicsWithValue(t,
		"growtree: WithSelection(99): unknown selection method",
		func() { growtree.New(growtree.WithSelection(growtree.SelectionMethod(99))) },
	)
	assert.Panics(t, func() {
		growtree.New(growtree.WithSelection(growtree.SelectionMethod(-1)))
	})
}

func TestGrowTree_SelectionMethodString(t *testing.T) {
	assert.Equal(t, "oldest", growtree.SelectOldest.String())
	assert.Equal(t, "newest", growtree.SelectNewest.String())
	assert.Equal(t, "random", growtree.SelectRandom.String())
	assert.Equal(t, "SelectionMethod(99)", growtree.SelectionMethod(99).String())
}

// TestGrowTree_StartIsOrigin pins the documented fixed-start policy.
func TestGrowTree_StartIsOrigin(t *testing.T) {
	for _, method := range allMethods {
		m, err := growtree.New(growtree.WithSelection(method)).Generate(6, 4, core.WithSeed(11))
		require.NoError(t, err)
		assert.Equal(t, core.Coordinate{X: 0, Y: 0}, m.Start(), method.String())
	}
}

// TestGrowTree_GoalIsFarEndOfStrip pins the goal policy on strips,
// where the active list can only deepen by walking away from the
// origin: the deepest cell is the far end for every method and seed.
func TestGrowTree_GoalIsFarEndOfStrip(t *testing.T) {
	for _, method := range allMethods {
		g := growtree.New(growtree.WithSelection(method))

		wide, err := g.Generate(8, 1, core.WithSeed(7))
		require.NoError(t, err)
		assert.Equal(t, core.Coordinate{X: 7, Y: 0}, wide.Goal(), method.String())

		tall, err := g.Generate(1, 8, core.WithSeed(7))
		require.NoError(t, err)
		assert.Equal(t, core.Coordinate{X: 0, Y: 7}, tall.Goal(), method.String())
	}
}

func TestGrowTree_GeneratorIsReusable(t *testing.T) {
	g := growtree.New(growtree.WithSelection(growtree.SelectRandom))

	first, err := g.Generate(9, 6, core.WithSeed(21))
	require.NoError(t, err)
	second, err := g.Generate(9, 6, core.WithSeed(21))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}
