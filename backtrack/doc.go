// Package backtrack implements the randomized depth-first backtracker,
// the reference maze generation algorithm of this module.
//
// The carve, in four steps:
//
//  1. Pick a uniformly random start cell, mark it visited, push it.
//  2. Look at the stack top's unvisited in-bounds neighbors.
//  3. If any exist, carve to one chosen uniformly at random, mark it
//     visited and push it as the new top.
//  4. If none exist, pop (backtrack). Repeat from 2 until the stack is
//     empty.
//
// Guarantees:
//
//   - Spanning tree: every cell is visited exactly once, so the carved
//     passage graph is fully connected and acyclic, with exactly
//     width×height−1 passages. Callers may rely on this.
//   - Termination: each iteration either pushes a never-visited cell
//     or pops, so the loop ends after at most 2×width×height steps.
//
// Policies (stated per the Generator contract):
//
//   - Start: a uniformly random cell.
//   - Goal: the cell reached at the greatest stack depth (the deepest
//     dead end), ties resolving to the first one reached. On a 1×1
//     maze start and goal coincide.
//   - Randomness: the start pick and each neighbor pick draw from the
//     call-local source; with core.WithSeed the run is bit-identical
//     across calls.
//
// Texture: long, winding corridors with few but deep dead ends, the
// classic look of depth-first mazes, at the cost of a high river
// factor compared to prims or growtree with random selection.
//
// Errors: only core.ErrInvalidDimensions, returned before the first
// random draw.
//
// Complexity: O(width×height) time and memory.
package backtrack
