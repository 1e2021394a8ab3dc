package core

import "math/bits"

// Field describes one grid cell: its coordinate, the set of directions
// with an open passage to a neighbor, and the transient visited marker
// algorithms use while carving. Fields are handed out by value, so a
// caller can never mutate grid state through one.
//
// Invariant: a passage open toward d is mirrored on the neighboring
// field toward d.Opposite(). Only Grid.OpenPassage writes passage
// bits, and it always writes both sides.
type Field struct {
	coord    Coordinate
	passages uint8 // bit i = open passage toward Direction(i)
	visited  bool  // transient generation marker
}

// Coord returns the field's grid coordinate.
func (f Field) Coord() Coordinate {
	return f.coord
}

// HasPassage reports whether the field opens toward d.
func (f Field) HasPassage(d Direction) bool {
	return f.passages&d.bit() != 0
}

// HasWall reports whether the field is closed toward d.
// Absence of a passage is a wall.
func (f Field) HasWall(d Direction) bool {
	return !f.HasPassage(d)
}

// Passages lists the field's open directions in canonical order.
func (f Field) Passages() []Direction {
	out := make([]Direction, 0, numDirections)
	for _, d := range AllDirections() {
		if f.HasPassage(d) {
			out = append(out, d)
		}
	}

	return out
}

// PassageCount returns the number of open directions.
func (f Field) PassageCount() int {
	return bits.OnesCount8(f.passages)
}

// Visited reports the transient generation marker. It is meaningful
// only while an algorithm carves; not every algorithm tracks visits
// (Eller's works on row sets), so consumers of a finished Maze should
// read passages, never this flag.
func (f Field) Visited() bool {
	return f.visited
}
