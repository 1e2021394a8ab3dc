package wilson

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/telemetry"
)

// AlgorithmName is recorded in Metadata.Algorithm of every maze this
// package produces.
const AlgorithmName = "wilson"

// Generator carves mazes with Wilson's loop-erased random walks. It is
// stateless; one value may serve concurrent Generate calls.
type Generator struct{}

// New returns a Wilson's-algorithm generator.
func New() *Generator {
	return &Generator{}
}

// Algorithm reports "wilson".
func (g *Generator) Algorithm() string {
	return AlgorithmName
}

// Generate carves a width×height maze by loop-erased random walks: the
// origin seeds the tree, then each round walks randomly from the first
// unvisited cell in row-major order until the walk touches the tree,
// recording only the last exit taken from every cell it crosses.
// Revisiting a cell overwrites its exit, which erases the loop just
// closed. The recorded exits always point strictly toward the tree, so
// carving them attaches every walked cell acyclically and the passage
// graph is a spanning tree (Size()-1 passages, fully connected).
//
// Start policy: the origin (0,0). Goal policy: a farthest cell from
// the start by passage-graph distance, resolved deterministically by
// core.FarthestFrom. Randomness: one draw per walk step. Walk lengths
// vary, but every draw is determined by the source, so WithSeed makes
// runs bit-identical.
//
// Fails only with ErrInvalidDimensions, before any random draw.
// Complexity: O(width×height) expected time on top of the walks
// themselves, whose expected total length is bounded by the grid's
// cover time; O(width×height) memory.
func (g *Generator) Generate(width, height int, opts ...core.Option) (*core.Maze, error) {
	// 1. Resolve options and validate dimensions before any draw.
	o := core.NewOptions(opts...)

	grid, err := core.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("wilson: %w", err)
	}

	_, span := telemetry.Tracer(AlgorithmName).Start(o.Ctx, "wilson.generate")
	defer span.End()
	startTime := time.Now()

	rng, seed, seeded := o.Source()

	// 2. The origin alone forms the initial tree.
	start := core.Coordinate{}
	grid.Visit(start)

	// 3. Walk from the first unvisited cell until the tree absorbs it,
	// round after round, until no unvisited cell remains. The cursor
	// only moves forward: cells never unvisit.
	cursor := 0
	for carved := 1; carved < grid.Size(); {
		for grid.Visited(core.Coordinate{X: cursor % width, Y: cursor / width}) {
			cursor++
		}
		walkStart := core.Coordinate{X: cursor % width, Y: cursor / width}

		// 3a. Random walk, keeping only the last exit per cell.
		exits := make(map[core.Coordinate]core.Direction)
		cur := walkStart
		for {
			ns := grid.Neighbors(cur)
			n := ns[rng.Intn(len(ns))]
			exits[cur] = n.Dir
			if grid.Visited(n.Coord) {
				break
			}
			cur = n.Coord
		}

		// 3b. Carve the surviving exits and fold the cells into the
		// tree. The carve order does not matter: the exits are fixed
		// and each opens one wall exactly once.
		for c, d := range exits {
			grid.OpenPassage(c, d)
			grid.Visit(c)
		}
		carved += len(exits)
	}

	// 4. Place the goal and seal the carve into the immutable artifact.
	goal := core.FarthestFrom(grid, start)

	maze, err := core.NewMaze(grid, start, goal, AlgorithmName, seed, seeded)
	if err != nil {
		return nil, fmt.Errorf("wilson: seal maze: %w", err)
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
