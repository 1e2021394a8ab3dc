package backtrack

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/telemetry"
)

// AlgorithmName is recorded in Metadata.Algorithm of every maze this
// package produces.
const AlgorithmName = "backtrack"

// Generator carves mazes with the randomized depth-first backtracker.
// It is stateless; one value may serve concurrent Generate calls.
type Generator struct{}

// New returns a depth-first backtracking generator.
func New() *Generator {
	return &Generator{}
}

// Algorithm reports "backtrack".
func (g *Generator) Algorithm() string {
	return AlgorithmName
}

// Generate carves a width×height maze by randomized depth-first
// traversal: from a random start cell, repeatedly carve to a uniformly
// random unvisited neighbor of the stack top, backtracking at dead
// ends until the stack drains. Every cell is visited exactly once, so
// the passage graph is a spanning tree (Size()-1 passages, fully
// connected, no cycles).
//
// Start policy: a uniformly random cell. Goal policy: the cell reached
// at the greatest stack depth, ties resolving to the first one reached.
// Randomness: the start pick and each neighbor pick; nothing else
// draws from the source, so WithSeed makes runs bit-identical.
//
// Fails only with ErrInvalidDimensions, before any random draw.
// Complexity: O(width×height) time and memory.
func (g *Generator) Generate(width, height int, opts ...core.Option) (*core.Maze, error) {
	// 1. Resolve options and validate dimensions before any draw.
	o := core.NewOptions(opts...)

	grid, err := core.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("backtrack: %w", err)
	}

	_, span := telemetry.Tracer(AlgorithmName).Start(o.Ctx, "backtrack.generate")
	defer span.End()
	startTime := time.Now()

	rng, seed, seeded := o.Source()

	// 2. Random start cell, marked and pushed.
	start := core.Coordinate{X: rng.Intn(width), Y: rng.Intn(height)}
	grid.Visit(start)
	stack := make([]core.Coordinate, 0, grid.Size())
	stack = append(stack, start)

	// The deepest cell on the stack so far becomes the goal.
	goal, maxDepth := start, 0

	// 3. Carve until the stack drains.
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// 3a. Unvisited in-bounds neighbors of the stack top.
		var open []core.Neighbor
		for _, n := range grid.Neighbors(cur) {
			if !grid.Visited(n.Coord) {
				open = append(open, n)
			}
		}

		// 3b. Dead end: backtrack.
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// 3c. Carve to one neighbor chosen uniformly at random.
		next := open[rng.Intn(len(open))]
		grid.OpenPassage(cur, next.Dir)
		grid.Visit(next.Coord)
		stack = append(stack, next.Coord)

		if depth := len(stack) - 1; depth > maxDepth {
			maxDepth, goal = depth, next.Coord
		}
	}

	// 4. Seal the carve into the immutable artifact.
	maze, err := core.NewMaze(grid, start, goal, AlgorithmName, seed, seeded)
	if err != nil {
		return nil, fmt.Errorf("backtrack: seal maze: %w", err)
	}

	span.SetAttributes(
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Bool("maze.seeded", seeded),
		attribute.Int("maze.passages", maze.PassageCount()),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return maze, nil
}
