// Package prims implements the randomized variant of Prim's algorithm
// for maze generation.
//
// Classic Prim's grows a minimum spanning tree by repeatedly taking
// the cheapest edge that leaves the tree. The maze variant replaces
// "cheapest" with "uniformly random": the claimed region grows from
// the origin, and each step promotes one random frontier cell by
// carving toward one random already-claimed neighbor.
//
//  1. Claim the origin; its neighbors form the initial frontier.
//  2. Remove a uniformly random cell from the frontier.
//  3. Carve a passage toward a uniformly random claimed neighbor of
//     that cell (every frontier cell has at least one).
//  4. Claim the cell; its unclaimed neighbors join the frontier.
//  5. Repeat from 2 until the frontier is empty.
//
// Every cell outside the origin is claimed through exactly one carve,
// so the result is always a spanning tree. The claimed region stays
// edge-connected while it grows, which gives the texture its many
// short dead ends radiating from the origin.
//
// Policies (stated per the Generator contract):
//
//   - Start: the fixed corner (0,0).
//   - Goal: a farthest cell from the start by passage-graph distance,
//     resolved deterministically by core.FarthestFrom.
//   - Randomness: two draws per claimed cell, the frontier pick and
//     the neighbor pick.
//
// Errors: only core.ErrInvalidDimensions, returned before the first
// random draw.
//
// Complexity: O(width×height) time and memory; frontier membership is
// tracked by index, so claims never rescan the frontier.
package prims
