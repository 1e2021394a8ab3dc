package growtree

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/telemetry"
)

// Generator carves mazes with the growing-tree algorithm. It is
// stateless apart from its selection method; one value may serve
// concurrent Generate calls.
type Generator struct {
	selection SelectionMethod
}

// New returns a growing-tree generator. Without options it expands the
// oldest active cell at every dead end.
func New(opts ...Option) *Generator {
	g := &Generator{selection: SelectOldest}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Algorithm reports "growtree".
func (g *Generator) Algorithm() string {
	return AlgorithmName
}

// Selection reports the configured selection method.
func (g *Generator) Selection() SelectionMethod {
	return g.selection
}

// Generate carves a width×height maze by growing a tree of passages
// from the origin. Every visited cell joins an active list; the carve
// advances from the current cell into a uniformly random unvisited
// neighbor until it dead-ends, then retires exhausted cells and resumes
// from whichever active cell the selection method picks. A cell leaves
// the list only once all its neighbors are visited, so the passage
// graph is a spanning tree (Size()-1 passages, fully connected, no
// cycles) for every seed and every selection method.
//
// Start policy: the origin (0,0). Goal policy: the cell reached at the
// deepest point of the active list, ties resolving to the first one
// reached. Randomness: each neighbor pick, plus the dead-end pick under
// SelectRandom; WithSeed makes runs bit-identical per method.
//
// Fails only with ErrInvalidDimensions, before any random draw.
// Complexity: O(width×height) time and memory for SelectNewest and
// SelectRandom; SelectOldest retires from the front of the list, which
// costs O(width×height) shifts in the worst case.
func (g *Generator) Generate(width, height int, opts ...core.Option) (*core.Maze, error) {
	// 1. Resolve options and validate dimensions before any draw.
	o := core.NewOptions(opts...)

	grid, err := core.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("growtree: %w", err)
	}

	_, span := telemetry.Tracer(AlgorithmName).Start(o.Ctx, "growtree.generate")
	defer span.End()
	startTime := time.Now()

	rng, seed, seeded := o.Source()

	// 2. Seed the tree at the origin.
	start := core.Coordinate{}
	grid.Visit(start)
	active := make([]core.Coordinate, 0, grid.Size())
	active = append(active, start)
	cur := start

	// The cell carved at the deepest point of the list becomes the goal.
	goal, maxDepth := start, 0

	// 3. Grow until every active cell has been retired.
	for len(active) > 0 {
		// 3a. Unvisited in-bounds neighbors of the current cell.
		var open []core.Neighbor
		for _, n := range grid.Neighbors(cur) {
			if !grid.Visited(n.Coord) {
				open = append(open, n)
			}
		}

		// 3b. Dead end: retire the exhausted cell, then let the
		// selection method pick where to resume.
		if len(open) == 0 {
			active = retire(active, cur)
			if len(active) == 0 {
				break
			}
			switch g.selection {
			case SelectNewest:
				cur = active[len(active)-1]
			case SelectRandom:
				cur = active[rng.Intn(len(active))]
			default:
				cur = active[0]
			}
			continue
		}

		// 3c. Carve to one neighbor chosen uniformly at random and
		// advance into it.
		next := open[rng.Intn(len(open))]
		grid.OpenPassage(cur, next.Dir)
		grid.Visit(next.Coord)
		active = append(active, next.Coord)
		cur = next.Coord

		if len(active) > maxDepth {
			maxDepth, goal = len(active), cur
		}
	}

	// 4. Seal the carve into the immutable artifact.
	maze, err := core.NewMaze(grid, start, goal, AlgorithmName, seed, seeded)
	if err != nil {
		return nil, fmt.Errorf("growtree: seal maze: %w", err)
	}

	span.SetAttributes(
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Bool("maze.seeded", seeded),
		attribute.String("maze.selection", g.selection.String()),
		attribute.Int("maze.passages", maze.PassageCount()),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return maze, nil
}

// retire removes one occurrence of c from the list, preserving order.
func retire(active []core.Coordinate, c core.Coordinate) []core.Coordinate {
	for i := range active {
		if active[i] == c {
			return append(active[:i], active[i+1:]...)
		}
	}

	return active
}
