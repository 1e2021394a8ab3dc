package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// mazeNamespace scopes SHA1-derived maze IDs to this module, so IDs
// never collide with another application's content-derived UUIDs.
var mazeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/daedalab/mazegen"))

// Metadata records how a maze was generated and fingerprints its shape.
type Metadata struct {
	// Algorithm is the producing generator's name ("backtrack",
	// "ellers", "growtree", "prims", "wilson").
	Algorithm string

	// Seed is the value the random source was built from. Replaying
	// the same algorithm with WithSeed(Seed) reproduces the maze when
	// Seeded is true.
	Seed int64

	// Seeded reports whether the run is reproducible from Seed alone.
	// False for entropy-seeded runs and for WithRand-injected sources.
	Seeded bool

	// Checksum is the 64-bit xxHash of the canonical maze encoding.
	// Mazes with identical shape (dimensions, endpoints, passages)
	// share a checksum regardless of algorithm or seed.
	Checksum uint64

	// ID is the SHA1-derived UUID of the canonical encoding: a stable,
	// content-addressed identity. Equal shapes get equal IDs.
	ID uuid.UUID
}

// Maze is the immutable generation artifact: the carved grid plus the
// designated start and goal cells and generation metadata. A Maze is
// fully populated before it is returned and is never mutated
// afterwards; all accessors are read-only and return values, so it is
// safe to share across goroutines.
type Maze struct {
	grid  *Grid
	start Coordinate
	goal  Coordinate
	meta  Metadata
}

// NewMaze seals a carved grid into an immutable Maze, taking ownership
// of grid; the caller must not touch it afterwards. The shape checksum
// and ID are computed once here.
//
// Fails with ErrNilGrid on a nil grid, ErrOutOfBounds (wrapped with the
// offending coordinate) when start or goal lies outside the grid, and
// ErrGoalEqualsStart when the endpoints coincide on a grid with more
// than one cell. A 1×1 grid is the permitted degenerate case where
// start == goal.
func NewMaze(grid *Grid, start, goal Coordinate, algorithm string, seed int64, seeded bool) (*Maze, error) {
	// 1. Guard the handoff invariants.
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("core: NewMaze start %s: %w", start, ErrOutOfBounds)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("core: NewMaze goal %s: %w", goal, ErrOutOfBounds)
	}
	if start == goal && grid.Size() > 1 {
		return nil, fmt.Errorf("core: NewMaze %s: %w", start, ErrGoalEqualsStart)
	}

	// 2. Fingerprint the shape once; the maze never changes afterwards.
	canon := canonicalBytes(grid, start, goal)
	meta := Metadata{
		Algorithm: algorithm,
		Seed:      seed,
		Seeded:    seeded,
		Checksum:  xxhash.Sum64(canon),
		ID:        uuid.NewSHA1(mazeNamespace, canon),
	}

	return &Maze{grid: grid, start: start, goal: goal, meta: meta}, nil
}

// canonicalBytes renders a carved grid's shape as a stable byte string:
// dimensions and endpoints as big-endian 64-bit values, then every
// passage mask in row-major order. Algorithm and seed are deliberately
// excluded so the encoding identifies the maze shape, not the run that
// produced it.
func canonicalBytes(g *Grid, start, goal Coordinate) []byte {
	header := []int{g.width, g.height, start.X, start.Y, goal.X, goal.Y}

	buf := make([]byte, 0, 8*len(header)+len(g.fields))
	var scratch [8]byte
	for _, v := range header {
		binary.BigEndian.PutUint64(scratch[:], uint64(int64(v)))
		buf = append(buf, scratch[:]...)
	}
	for i := range g.fields {
		buf = append(buf, g.fields[i].passages)
	}

	return buf
}

// Width returns the maze width in cells.
func (m *Maze) Width() int {
	return m.grid.width
}

// Height returns the maze height in cells.
func (m *Maze) Height() int {
	return m.grid.height
}

// Size returns the total cell count (width×height).
func (m *Maze) Size() int {
	return m.grid.Size()
}

// Start returns the designated start cell.
func (m *Maze) Start() Coordinate {
	return m.start
}

// Goal returns the designated goal cell.
func (m *Maze) Goal() Coordinate {
	return m.goal
}

// Meta returns the generation metadata.
func (m *Maze) Meta() Metadata {
	return m.meta
}

// FieldAt returns a copy of the field at c, delegating to the grid and
// re-exposing ErrOutOfBounds for coordinates outside the maze.
func (m *Maze) FieldAt(c Coordinate) (Field, error) {
	return m.grid.FieldAt(c)
}

// Neighbors returns c's in-bounds neighbors in canonical direction
// order, or nil when c is out of bounds.
func (m *Maze) Neighbors(c Coordinate) []Neighbor {
	return m.grid.Neighbors(c)
}

// HasPassage reports whether the cell at c opens toward d. Out-of-bounds
// coordinates report false rather than an error, which keeps consumers'
// wall-scanning loops branch-light.
func (m *Maze) HasPassage(c Coordinate, d Direction) bool {
	if !m.grid.InBounds(c) {
		return false
	}

	return m.grid.fields[m.grid.index(c)].HasPassage(d)
}

// PassageCount returns the number of open passages, counting each
// undirected passage once. A spanning-tree maze has Size()-1 of them.
func (m *Maze) PassageCount() int {
	return m.grid.PassageCount()
}

// Equal reports field-for-field structural equality: dimensions,
// endpoints, and every passage mask. Metadata is not compared, so two
// runs that carve the same shape compare equal even across algorithms.
func (m *Maze) Equal(other *Maze) bool {
	if other == nil {
		return false
	}
	// Cheap reject: equal shapes always share a checksum.
	if m.meta.Checksum != other.meta.Checksum {
		return false
	}
	if m.grid.width != other.grid.width || m.grid.height != other.grid.height {
		return false
	}
	if m.start != other.start || m.goal != other.goal {
		return false
	}
	for i := range m.grid.fields {
		if m.grid.fields[i].passages != other.grid.fields[i].passages {
			return false
		}
	}

	return true
}

// String renders the maze as an ASCII box drawing for debugging: cell
// corners as "·", closed walls as "-" and "|", the start cell as "S"
// and the goal cell as "G". This is a fmt.Stringer convenience, not a
// rendering surface.
func (m *Maze) String() string {
	var b strings.Builder

	for y := 0; y < m.grid.height; y++ {
		// Top edge of the row: wall or opening toward North.
		for x := 0; x < m.grid.width; x++ {
			b.WriteString("·")
			if m.HasPassage(Coordinate{X: x, Y: y}, North) {
				b.WriteString(" ")
			} else {
				b.WriteString("-")
			}
		}
		b.WriteString("·\n")

		// Cell row: wall or opening toward West, then the cell marker.
		for x := 0; x < m.grid.width; x++ {
			c := Coordinate{X: x, Y: y}
			if m.HasPassage(c, West) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}

			switch c {
			case m.start:
				b.WriteString("S")
			case m.goal:
				b.WriteString("G")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("|\n")
	}

	// Bottom edge of the maze.
	for x := 0; x < m.grid.width; x++ {
		b.WriteString("·-")
	}
	b.WriteString("·\n")

	return b.String()
}
