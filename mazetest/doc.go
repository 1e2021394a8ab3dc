// Package mazetest exports the generator conformance suite shared by
// every algorithm package's tests.
//
// Run(t, g) exercises the full contract against one core.Generator:
//
//   - FieldCount        – every coordinate resolves to its own field
//   - PassageSymmetry   – undirected passages, mirrored on both sides
//   - BorderSealed      – no passage leads out of the grid
//   - SpanningTree      – connected, exactly Size()-1 passages
//   - StartGoalBounds   – endpoints in bounds, distinct when Size()>1
//   - MetadataStamped   – algorithm name, seed, and checksum recorded
//   - Determinism       – equal seed ⇒ field-for-field equal mazes
//   - InvalidDimensions – non-positive dimensions fail, never panic
//   - SingleCell        – 1×1 degenerates to start==goal, no passages
//   - AccessorBounds    – FieldAt rejects outside coordinates
//   - Unseeded          – entropy runs succeed and replay via the
//     recorded seed
//
// GoalFarthest stays outside Run: it pins the breadth-first
// farthest-cell goal policy, which only some algorithms promise.
//
// Each check is also exported on its own, so a package can rerun a
// single property under algorithm-specific options:
//
//	func TestGrowTree_Contract(t *testing.T) {
//	    mazetest.Run(t, growtree.New())
//	}
//
// The suite asserts only properties every generator in this module
// guarantees. Algorithms that deliberately broke one of them (say, by
// introducing cycles) would need their own reduced suite instead.
package mazetest
