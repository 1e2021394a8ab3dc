package core_test

import (
	"testing"

	"github.com/daedalab/mazegen/core"
)

// BenchmarkNewGrid measures slab allocation and coordinate stamping for
// a 64×64 grid.
func BenchmarkNewGrid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := core.NewGrid(64, 64); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFarthestFrom measures the goal-placement scan on a 64×64
// serpentine carve: a single path through every cell, the worst case
// for breadth-first distance (path length = cell count).
func BenchmarkFarthestFrom(b *testing.B) {
	// 1. Carve the serpentine once; the scan is what we measure.
	g, err := core.NewGrid(64, 64)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 63; x++ {
			g.OpenPassage(core.Coordinate{X: x, Y: y}, core.East)
		}
		if y == 63 {
			continue
		}
		// Alternate the row connector so the path snakes.
		if y%2 == 0 {
			g.OpenPassage(core.Coordinate{X: 63, Y: y}, core.South)
		} else {
			g.OpenPassage(core.Coordinate{X: 0, Y: y}, core.South)
		}
	}

	// 2. Exclude construction from the measurement.
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = core.FarthestFrom(g, core.Coordinate{X: 0, Y: 0})
	}
}
