// Package ellers implements Eller's algorithm: row-streaming maze
// generation in O(width) working memory.
//
// Unlike the stack- and frontier-based generators, Eller's never holds
// more than one row of bookkeeping. Each cell of the current row
// carries a set label meaning "already connected":
//
//  1. The first row starts with every cell in its own set.
//  2. Adjacent cells in different sets join horizontally with
//     probability 1/2; joining merges their sets.
//  3. Every set opens exactly one randomly placed passage down to the
//     next row; the cell below inherits the set label.
//  4. Unconnected cells of the next row get fresh singleton sets, and
//     the process repeats.
//  5. The last row joins all adjacent cells still in different sets.
//
// Horizontal joins only merge disjoint sets and downward passages only
// reach fresh cells, so no step can close a cycle; the last-row sweep
// leaves a single set. The result is always a spanning tree.
//
// Policies (stated per the Generator contract):
//
//   - Start: the fixed corner (0,0).
//   - Goal: a farthest cell from the start by passage-graph distance,
//     resolved deterministically by core.FarthestFrom.
//   - Randomness: one coin per adjacent pair per row, drawn whether
//     or not the join applies so the stream is independent of merge
//     history, plus one placement pick per set per row.
//
// Texture: pronounced horizontal corridors with regular downward
// links; the row-local bookkeeping is what makes the algorithm suited
// to arbitrarily tall mazes.
//
// Errors: only core.ErrInvalidDimensions, returned before the first
// random draw.
//
// Complexity: O(width×height) time, O(width) working memory beyond
// the grid itself.
package ellers
