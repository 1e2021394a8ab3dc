// Package growtree defines the selection methods and construction
// options for the growing-tree maze generator.
package growtree

import "fmt"

// AlgorithmName identifies growing-tree mazes in their metadata.
const AlgorithmName = "growtree"

// SelectionMethod chooses which active cell the generator expands next.
// The method is the personality knob of the growing-tree family: the
// carving loop is identical for all values, only this choice differs.
type SelectionMethod int

const (
	// SelectOldest expands the cell that has waited longest on the
	// active list, sweeping the grid in broad fronts.
	SelectOldest SelectionMethod = iota
	// SelectNewest expands the most recently added cell, which yields
	// the long winding corridors of depth-first backtracking.
	SelectNewest
	// SelectRandom expands a uniformly random active cell, growing the
	// maze outward the way Prim's algorithm does.
	SelectRandom

	numSelectionMethods
)

// String returns the lowercase name of the selection method.
func (m SelectionMethod) String() string {
	switch m {
	case SelectOldest:
		return "oldest"
	case SelectNewest:
		return "newest"
	case SelectRandom:
		return "random"
	default:
		return fmt.Sprintf("SelectionMethod(%d)", int(m))
	}
}

func (m SelectionMethod) valid() bool {
	return m >= 0 && m < numSelectionMethods
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithSelection sets the selection method used at dead ends.
// Panics when the method is not one of the declared constants.
func WithSelection(m SelectionMethod) Option {
	return func(g *Generator) {
		if !m.valid() {
			panic(fmt.Sprintf("growtree: WithSelection(%d): unknown selection method", int(m)))
		}
		g.selection = m
	}
}
