package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daedalab/mazegen/core"
)

func TestFarthestFrom_Corridor(t *testing.T) {
	// (0,0)-(1,0)-(2,0): the far end of the corridor wins.
	g := mustGrid(t, 3, 1)
	g.OpenPassage(core.Coordinate{X: 0, Y: 0}, core.East)
	g.OpenPassage(core.Coordinate{X: 1, Y: 0}, core.East)

	assert.Equal(t, core.Coordinate{X: 2, Y: 0}, core.FarthestFrom(g, core.Coordinate{X: 0, Y: 0}))
	assert.Equal(t, core.Coordinate{X: 0, Y: 0}, core.FarthestFrom(g, core.Coordinate{X: 2, Y: 0}))
	// From the middle both ends tie at distance 1; canonical order
	// enqueues East before West, so West is dequeued last.
	assert.Equal(t, core.Coordinate{X: 0, Y: 0}, core.FarthestFrom(g, core.Coordinate{X: 1, Y: 0}))
}

func TestFarthestFrom_LShape(t *testing.T) {
	// (0,0)
	//   |
	// (0,1)-(1,1): two passages, farthest is the corner's far arm.
	g := mustGrid(t, 2, 2)
	g.OpenPassage(core.Coordinate{X: 0, Y: 0}, core.South)
	g.OpenPassage(core.Coordinate{X: 0, Y: 1}, core.East)

	assert.Equal(t, core.Coordinate{X: 1, Y: 1}, core.FarthestFrom(g, core.Coordinate{X: 0, Y: 0}))
}

func TestFarthestFrom_TieResolvesInScanOrder(t *testing.T) {
	// A plus shape: four arms at distance 1 from the center. The BFS
	// enqueues North, East, South, West, so the West arm is dequeued
	// last and wins the tie deterministically.
	g := mustGrid(t, 3, 3)
	center := core.Coordinate{X: 1, Y: 1}
	for _, d := range core.AllDirections() {
		g.OpenPassage(center, d)
	}

	assert.Equal(t, core.Coordinate{X: 0, Y: 1}, core.FarthestFrom(g, center))
}

func TestFarthestFrom_NoPassages(t *testing.T) {
	// With nothing carved the start is the only reachable cell.
	g := mustGrid(t, 2, 2)
	start := core.Coordinate{X: 1, Y: 0}
	assert.Equal(t, start, core.FarthestFrom(g, start))
}

func TestFarthestFrom_IgnoresUnreachableRegion(t *testing.T) {
	// Two disconnected corridors; the scan never leaves the start's.
	g := mustGrid(t, 2, 2)
	g.OpenPassage(core.Coordinate{X: 0, Y: 0}, core.East)
	g.OpenPassage(core.Coordinate{X: 0, Y: 1}, core.East)

	assert.Equal(t, core.Coordinate{X: 1, Y: 0}, core.FarthestFrom(g, core.Coordinate{X: 0, Y: 0}))
}

func TestFarthestFrom_PanicsOutOfBounds(t *testing.T) {
	g := mustGrid(t, 2, 2)
	assert.Panics(t, func() {
		core.FarthestFrom(g, core.Coordinate{X: 9, Y: 9})
	})
}
