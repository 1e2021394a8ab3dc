package ellers

import (
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/daedalab/mazegen/core"
	"github.com/daedalab/mazegen/telemetry"
)

// AlgorithmName is recorded in Metadata.Algorithm of every maze this
// package produces.
const AlgorithmName = "ellers"

// horizontalJoinChance is the probability of joining two horizontally
// adjacent cells that belong to different sets.
const horizontalJoinChance = 0.5

// Generator carves mazes with Eller's algorithm, one row at a time.
// It is stateless; one value may serve concurrent Generate calls.
type Generator struct{}

// New returns an Eller's-algorithm generator.
func New() *Generator {
	return &Generator{}
}

// Algorithm reports "ellers".
func (g *Generator) Algorithm() string {
	return AlgorithmName
}

// Generate carves a width×height maze row by row. Cells of the current
// row carry set labels; adjacent cells in different sets join
// horizontally with probability 1/2, every set sends one randomly
// placed passage down to the next row, and the final row joins all
// remaining distinct sets. Joins only ever merge disjoint sets and
// downward passages only ever reach fresh cells, so the result is a
// spanning tree.
//
// Start policy: the fixed corner (0,0). Goal policy: a farthest cell
// from the start by passage-graph distance (core.FarthestFrom).
// Randomness: one coin per adjacent pair per row (drawn whether or not
// the join applies, keeping the stream independent of set state) and
// one pick per set per row.
//
// Fails only with ErrInvalidDimensions, before any random draw.
// Complexity: O(width×height) time, O(width) working memory beyond
// the grid.
func (g *Generator) Generate(width, height int, opts ...core.Option) (*core.Maze, error) {
	// 1. Resolve options and validate dimensions before any draw.
	o := core.NewOptions(opts...)

	grid, err := core.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("ellers: %w", err)
	}

	_, span := telemetry.Tracer(AlgorithmName).Start(o.Ctx, "ellers.generate")
	defer span.End()
	startTime := time.Now()

	rng, seed, seeded := o.Source()

	// 2. First row: every cell in its own set. Label 0 means "unset";
	// real labels start at 1.
	setOf := make([]int, width)
	nextLabel := 0
	for x := range setOf {
		nextLabel++
		setOf[x] = nextLabel
	}

	// 3. All rows but the last: horizontal joins, then one downward
	// passage per set, then fresh labels for unconnected cells.
	for y := 0; y < height-1; y++ {
		joinRow(grid, rng, setOf, y, false)

		next := make([]int, width)
		for _, xs := range rowSets(setOf) {
			x := xs[rng.Intn(len(xs))]
			grid.OpenPassage(core.Coordinate{X: x, Y: y}, core.South)
			next[x] = setOf[x]
		}
		for x := range next {
			if next[x] == 0 {
				nextLabel++
				next[x] = nextLabel
			}
		}
		setOf = next
	}

	// 4. Last row: join every adjacent pair still in different sets,
	// which stitches the remaining components into one.
	joinRow(grid, rng, setOf, height-1, true)

	// 5. Fixed start, farthest reachable cell as goal.
	start := core.Coordinate{X: 0, Y: 0}
	goal := core.FarthestFrom(grid, start)

	maze, err := core.NewMaze(grid, start, goal, AlgorithmName, seed, seeded)
	if err != nil {
		return nil, fmt.Errorf("ellers: seal maze: %w", err)
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

// joinRow walks the row's adjacent pairs left to right. With force set,
// every pair in different sets joins (the last-row sweep); otherwise a
// coin decides. The coin is drawn for every pair, joined or not, so the
// random stream does not depend on earlier merges.
func joinRow(grid *core.Grid, rng *rand.Rand, setOf []int, y int, force bool) {
	for x := 0; x < len(setOf)-1; x++ {
		join := force
		if !force {
			join = rng.Float64() < horizontalJoinChance
		}
		if !join || setOf[x] == setOf[x+1] {
			continue
		}

		grid.OpenPassage(core.Coordinate{X: x, Y: y}, core.East)
		mergeLabels(setOf, setOf[x+1], setOf[x])
	}
}

// mergeLabels relabels every cell in set "from" to set "to".
func mergeLabels(setOf []int, from, to int) {
	for x := range setOf {
		if setOf[x] == from {
			setOf[x] = to
		}
	}
}

// rowSets groups cell columns by set label, ordered by each set's first
// appearance left to right, so iteration is deterministic.
func rowSets(setOf []int) [][]int {
	index := make(map[int]int, len(setOf))
	var groups [][]int
	for x, label := range setOf {
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}

	return groups
}
