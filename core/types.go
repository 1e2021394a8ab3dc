// Package core defines the central Grid, Field, and Maze types, the
// Generator contract every algorithm package implements, and the
// per-call option set shared across generators.
//
// This file declares Direction, Coordinate, Neighbor, Generator,
// sentinel errors, and the Options/Option machinery.
//
// Errors:
//
//	ErrInvalidDimensions - width or height below 1.
//	ErrOutOfBounds       - coordinate outside [0,width)×[0,height).
//	ErrNilGrid           - nil *Grid handed to NewMaze.
//	ErrGoalEqualsStart   - start and goal coincide on a multi-cell grid.
package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for grid and maze operations.
var (
	// ErrInvalidDimensions indicates a requested width or height below 1.
	// It is the only error a Generator surfaces from Generate.
	ErrInvalidDimensions = errors.New("core: invalid dimensions")

	// ErrOutOfBounds indicates a coordinate lookup outside the grid.
	// Surfaced by Grid and Maze accessors, never by Generate.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")

	// ErrNilGrid indicates a nil *Grid was handed to NewMaze.
	ErrNilGrid = errors.New("core: grid is nil")

	// ErrGoalEqualsStart indicates start == goal on a grid with more
	// than one cell.
	ErrGoalEqualsStart = errors.New("core: goal equals start")
)

// Direction identifies one of the four orthogonal movement directions.
// The declared order North, East, South, West is the canonical
// enumeration order used by every deterministic scan in this module.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// numDirections is the size of the Direction enumeration.
const numDirections = 4

// AllDirections returns the four directions in canonical order
// (North, East, South, West). The array is a copy; callers may
// reorder it freely.
func AllDirections() [numDirections]Direction {
	return [numDirections]Direction{North, East, South, West}
}

// Opposite returns the inverse direction: North↔South, East↔West.
// Carving uses it to mirror a passage on the neighboring field.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Offset returns the coordinate delta of one step in direction d.
// Y grows downward: North is (0,-1) and South is (0,+1).
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// bit returns the passage-mask bit for d (bit i = Direction i).
func (d Direction) bit() uint8 {
	return 1 << d
}

// String returns the direction name, or "Direction(n)" for values
// outside the enumeration.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Coordinate identifies a cell by its zero-based (X, Y) grid position.
// It is a comparable value type usable as a map key; (0,0) is the
// top-left cell and Y grows downward.
type Coordinate struct {
	// X is the column, in [0, width).
	X int

	// Y is the row, in [0, height).
	Y int
}

// Move returns the coordinate one step away in direction d.
// The result may lie outside any particular grid; bounds are the
// grid's concern, not the coordinate's.
func (c Coordinate) Move(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbor pairs an in-bounds adjacent coordinate with the direction
// leading to it from the origin cell. Grid.Neighbors returns these in
// canonical direction order.
type Neighbor struct {
	// Dir is the direction from the origin cell to Coord.
	Dir Direction

	// Coord is the neighboring cell's coordinate.
	Coord Coordinate
}

// Generator is the capability contract every maze algorithm implements:
// given dimensions and per-call options, produce a complete Maze or
// fail. Implementations hold no per-call state, so a single Generator
// value may serve concurrent Generate calls; each call owns a private
// grid and random source.
type Generator interface {
	// Generate builds a width×height maze. Both dimensions must be at
	// least 1 or the call fails with ErrInvalidDimensions before any
	// allocation or random draw. Under WithSeed, calls with identical
	// dimensions and seed produce field-for-field identical mazes.
	// Generate never panics on invalid input.
	Generate(width, height int, opts ...Option) (*Maze, error)

	// Algorithm reports the generator's stable name, recorded in
	// Metadata.Algorithm of every maze it produces.
	Algorithm() string
}

// Option configures a single Generate call.
// Use with g.Generate(width, height, opts...).
type Option func(*Options)

// Options holds the per-call knobs shared by every generator.
// The zero value is not ready to use; start from DefaultOptions or
// NewOptions.
type Options struct {
	// Ctx is the parent context for the generation trace span.
	// It is never consulted for cancellation: generation is bounded
	// by O(width×height) work and always runs to completion.
	// Defaults to context.Background().
	Ctx context.Context

	// Seed is the pseudo-random seed applied when Seeded is true.
	Seed int64

	// Seeded records whether Seed was explicitly supplied. When false,
	// Generate draws a fresh entropy seed and runs are not expected to
	// repeat.
	Seeded bool

	// Rand, if non-nil, is used as the random source verbatim and
	// takes precedence over Seed. The run is recorded as
	// non-reproducible: an injected source has no recoverable seed.
	Rand *rand.Rand
}

// DefaultOptions returns Options with:
//   - Background context
//   - No seed (fresh entropy per call)
//   - No injected random source
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Seed:   0,
		Seeded: false,
		Rand:   nil,
	}
}

// NewOptions builds an Options value from the defaults plus opts,
// applied in order (later options override earlier ones).
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithSeed returns an Option that pins the pseudo-random source to a
// deterministic seed. Two Generate calls with equal dimensions and
// equal seeds produce identical mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithRand returns an Option that injects an explicit random source,
// overriding any seed. Panics on nil to surface the programmer error
// early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("core: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithContext returns an Option that sets the span-parent context for
// the generation trace. Passing a nil context has no effect
// (Background is retained). The context does not cancel generation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
