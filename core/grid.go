package core

import (
	"fmt"
	"math/bits"
)

// Grid is the mutable rectangular field storage an algorithm carves
// during one Generate call. Fields live in a single row-major slab
// (index = y*width + x). Exactly one goroutine owns a Grid from NewGrid
// until it is sealed by NewMaze; the type performs no locking.
type Grid struct {
	width  int
	height int
	fields []Field // row-major: index = y*width + x
}

// NewGrid allocates a width×height grid with every wall closed and no
// cell visited. Fails with ErrInvalidDimensions (wrapped with the
// offending pair) unless both dimensions are at least 1; validation
// happens before any allocation.
// Complexity: O(width×height).
func NewGrid(width, height int) (*Grid, error) {
	// 1. Validate dimensions before allocating anything.
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("core: NewGrid(%d, %d): %w", width, height, ErrInvalidDimensions)
	}

	// 2. Allocate the row-major slab and stamp each field's coordinate.
	fields := make([]Field, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fields[y*width+x].coord = Coordinate{X: x, Y: y}
		}
	}

	return &Grid{width: width, height: height, fields: fields}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total cell count (width×height).
func (g *Grid) Size() int {
	return g.width * g.height
}

// InBounds reports whether c lies inside [0,width)×[0,height).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index converts an in-bounds coordinate to its slab offset.
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// FieldAt returns a copy of the field at c. Fails with ErrOutOfBounds
// (wrapped with the offending coordinate) when c lies outside the grid.
func (g *Grid) FieldAt(c Coordinate) (Field, error) {
	if !g.InBounds(c) {
		return Field{}, fmt.Errorf("core: FieldAt%s: %w", c, ErrOutOfBounds)
	}

	return g.fields[g.index(c)], nil
}

// Neighbors returns c's in-bounds neighbors in canonical direction
// order (North, East, South, West). The order is stable so unseeded
// scans stay deterministic; algorithms wanting a random visiting order
// shuffle directions against their call-local source instead.
// Returns nil when c itself is out of bounds.
func (g *Grid) Neighbors(c Coordinate) []Neighbor {
	if !g.InBounds(c) {
		return nil
	}

	out := make([]Neighbor, 0, numDirections)
	for _, d := range AllDirections() {
		if n := c.Move(d); g.InBounds(n) {
			out = append(out, Neighbor{Dir: d, Coord: n})
		}
	}

	return out
}

// OpenPassage carves the passage from c toward d, mirroring the opening
// on the neighbor so the passage graph stays symmetric and undirected.
// The caller is responsible for bounds-checking before carving: a cell
// out of bounds on either side is a programming error and panics.
func (g *Grid) OpenPassage(c Coordinate, d Direction) {
	n := c.Move(d)
	if !g.InBounds(c) || !g.InBounds(n) {
		panic(fmt.Sprintf("core: OpenPassage%s toward %s leaves the %d×%d grid", c, d, g.width, g.height))
	}

	g.fields[g.index(c)].passages |= d.bit()
	g.fields[g.index(n)].passages |= d.Opposite().bit()
}

// Visit marks the transient generation flag at c.
// Panics when c is out of bounds, same contract as OpenPassage.
func (g *Grid) Visit(c Coordinate) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("core: Visit%s leaves the %d×%d grid", c, g.width, g.height))
	}

	g.fields[g.index(c)].visited = true
}

// Visited reports the transient generation flag at c.
// Panics when c is out of bounds, same contract as OpenPassage.
func (g *Grid) Visited(c Coordinate) bool {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("core: Visited%s leaves the %d×%d grid", c, g.width, g.height))
	}

	return g.fields[g.index(c)].visited
}

// PassageCount returns the number of open passages, counting each
// undirected passage once.
func (g *Grid) PassageCount() int {
	total := 0
	for i := range g.fields {
		total += bits.OnesCount8(g.fields[i].passages)
	}

	// Every passage is recorded on both of its fields.
	return total / 2
}
