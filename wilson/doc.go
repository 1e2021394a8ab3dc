// Package wilson implements Wilson's algorithm: maze generation by
// loop-erased random walks.
//
// The tree starts as the origin cell alone. Each round takes the first
// still-unvisited cell in row-major order and walks randomly until it
// steps onto the tree, remembering for every crossed cell only the
// LAST direction the walk left it in. Closing a loop therefore
// overwrites the loop's entry exit, erasing the loop from the record.
// When the walk touches the tree, the remembered exits trace a simple
// path (plus the branches of erased loops, which also point treeward)
// and are carved in one sweep.
//
// Why the exits cannot form a cycle: following last exits strictly
// increases last-visit time along the walk, so every chain of exits
// ends on the tree. Each walked cell contributes exactly one new cell
// and one new passage, keeping the passage graph a spanning tree
// (Size()-1 passages, fully connected) after every round.
//
// Wilson's is the slow aristocrat of the family: unbiased over
// spanning trees in its classic form, but the early walks wander long
// before finding the small tree. It pairs naturally with the faster
// generators when texture variety matters more than speed.
//
// Policies (stated per the Generator contract):
//
//   - Start: the fixed corner (0,0).
//   - Goal: a farthest cell from the start by passage-graph distance,
//     resolved deterministically by core.FarthestFrom.
//   - Randomness: one draw per walk step, nothing else.
//
// Errors: only core.ErrInvalidDimensions, returned before the first
// random draw.
//
// Complexity: expected total walk length is bounded by the grid's
// cover time, O((width×height)²) in the worst shapes; memory stays
// O(width×height).
package wilson
