package core

import "fmt"

// FarthestFrom returns a deterministic farthest cell from start by
// passage-graph distance: a breadth-first scan over open passages in
// canonical direction order, yielding the last cell dequeued. Ties
// between equally distant cells resolve to the one reached last in
// scan order, so the result is stable for a given carved grid.
//
// Generators use it for goal placement after carving. Panics when
// start is out of bounds (same programming-error contract as
// Grid.OpenPassage); on a grid with unreachable cells the scan simply
// never reaches them.
// Complexity: O(width×height) time and memory.
func FarthestFrom(g *Grid, start Coordinate) Coordinate {
	if !g.InBounds(start) {
		panic(fmt.Sprintf("core: FarthestFrom%s leaves the %d×%d grid", start, g.width, g.height))
	}

	// 1. Standard BFS ring over the carved passages.
	seen := make([]bool, len(g.fields))
	seen[g.index(start)] = true

	queue := make([]Coordinate, 0, len(g.fields))
	queue = append(queue, start)

	// 2. Drain the queue; the last dequeued cell is a farthest one.
	last := start
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		last = cur

		for _, d := range AllDirections() {
			if !g.fields[g.index(cur)].HasPassage(d) {
				continue
			}
			next := cur.Move(d)
			if idx := g.index(next); !seen[idx] {
				seen[idx] = true
				queue = append(queue, next)
			}
		}
	}

	return last
}
