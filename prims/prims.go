package prims

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/telemetry"
)

// AlgorithmName is recorded in Metadata.Algorithm of every maze this
// package produces.
const AlgorithmName = "prims"

// Generator carves mazes with the randomized variant of Prim's
// algorithm. It is stateless; one value may serve concurrent Generate
// calls.
type Generator struct{}

// New returns a randomized Prim's generator.
func New() *Generator {
	return &Generator{}
}

// Algorithm reports "prims".
func (g *Generator) Algorithm() string {
	return AlgorithmName
}

// Generate carves a width×height maze by frontier growth: the origin
// is claimed first, then one uniformly random frontier cell at a time
// is carved toward a uniformly random already-claimed neighbor and
// claimed itself, until the frontier is empty. Each cell is claimed
// through exactly one carve, so the passage graph is a spanning tree
// (Size()-1 passages, fully connected, no cycles).
//
// Start policy: the origin (0,0). Goal policy: a farthest cell from
// the start by passage-graph distance, resolved deterministically by
// core.FarthestFrom. Randomness: the frontier pick and the neighbor
// pick per claimed cell; WithSeed makes runs bit-identical.
//
// Fails only with ErrInvalidDimensions, before any random draw.
// Complexity: O(width×height) time and memory.
func (g *Generator) Generate(width, height int, opts ...core.Option) (*core.Maze, error) {
	// 1. Resolve options and validate dimensions before any draw.
	o := core.NewOptions(opts...)

	grid, err := core.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("prims: %w", err)
	}

	_, span := telemetry.Tracer(AlgorithmName).Start(o.Ctx, "prims.generate")
	defer span.End()
	startTime := time.Now()

	rng, seed, seeded := o.Source()

	// 2. Claim the origin and raise the initial frontier around it.
	start := core.Coordinate{}
	inFrontier := make([]bool, grid.Size())
	frontier := claim(grid, start, nil, inFrontier)

	// 3. Pull random frontier cells into the maze until none remain.
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		next := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		inFrontier[next.Y*width+next.X] = false

		// 3a. Carve toward one uniformly random claimed neighbor.
		// Every frontier cell borders at least one claimed cell.
		var in []core.Neighbor
		for _, n := range grid.Neighbors(next) {
			if grid.Visited(n.Coord) {
				in = append(in, n)
			}
		}
		grid.OpenPassage(next, in[rng.Intn(len(in))].Dir)

		// 3b. The cell joins the maze; its unclaimed neighbors join
		// the frontier.
		frontier = claim(grid, next, frontier, inFrontier)
	}

	// 4. Place the goal and seal the carve into the immutable artifact.
	goal := core.FarthestFrom(grid, start)

	maze, err := core.NewMaze(grid, start, goal, AlgorithmName, seed, seeded)
	if err != nil {
		return nil, fmt.Errorf("prims: seal maze: %w", err)
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

// claim marks c visited and appends its unvisited neighbors not yet on
// the frontier, keeping the membership index in step with the slice.
func claim(grid *core.Grid, c core.Coordinate, frontier []core.Coordinate, inFrontier []bool) []core.Coordinate {
	grid.Visit(c)
	for _, n := range grid.Neighbors(c) {
		at := n.Coord.Y*grid.Width() + n.Coord.X
		if !grid.Visited(n.Coord) && !inFrontier[at] {
			inFrontier[at] = true
			frontier = append(frontier, n.Coord)
		}
	}

	return frontier
}
