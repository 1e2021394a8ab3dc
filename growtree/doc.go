// Package growtree implements the growing-tree family of maze
// generators.
//
// The growing tree generalizes several classic algorithms behind one
// knob. Visited cells sit on an active list; the carve proceeds as:
//
//  1. Visit the origin and put it on the active list.
//  2. From the current cell, carve to a uniformly random unvisited
//     neighbor, add it to the list, and make it current.
//  3. When the current cell has no unvisited neighbor, retire it from
//     the list and resume from the cell the SelectionMethod picks:
//     the oldest entry, the newest entry, or a random one.
//  4. Repeat until the list is empty.
//
// SelectNewest reproduces the texture of depth-first backtracking,
// SelectRandom grows compact blobs the way Prim's algorithm does, and
// SelectOldest (the default) sweeps the grid in broad fronts. A cell
// is retired only once every neighbor is visited, so all three modes
// build a spanning tree (Size()-1 passages, fully connected) for every
// seed.
//
// Policies (stated per the Generator contract):
//
//   - Start: the fixed corner (0,0).
//   - Goal: the cell carved at the deepest point of the active list,
//     ties resolving to the first one reached.
//   - Randomness: each neighbor pick, plus the resume pick under
//     SelectRandom. WithSeed makes runs bit-identical per method;
//     different methods consume the stream differently and generally
//     yield different mazes from the same seed.
//
// Errors: only core.ErrInvalidDimensions, returned before the first
// random draw.
//
// Complexity: O(width×height) time and memory. SelectOldest retires
// from the front of the list, adding O(width×height) element shifts in
// the worst case.
package growtree
