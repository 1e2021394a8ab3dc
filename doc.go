// Package mazegen is your in-memory workshop for carving, comparing,
// and replaying 2D mazes, from the grid primitives up to five classic
// randomized generators.
//
// 🚀 What is mazegen?
//
//	A small, deterministic maze-generation library that brings together:
//		• Core primitives: bounds-checked grids, bitmask passages, immutable mazes
//		• Generators: depth-first backtracker, Eller's rows, growing tree,
//		  randomized Prim's, Wilson's loop-erased walks
//		• Reproducibility: seed in, bit-identical maze out; entropy runs
//		  record their seed for replay
//		• Identity: every maze stamps a content-derived checksum and UUID
//		• Conformance: one shared test suite every generator must pass
//
// ✨ Why choose mazegen?
//
//   - Spanning trees, guaranteed: every generator carves exactly one
//     path between any two cells, for every seed
//   - Honest errors: invalid dimensions and out-of-bounds access fail
//     with sentinel errors you can errors.Is against
//   - Pure Go value model: generators are stateless, mazes immutable,
//     safe to share across goroutines
//   - Observable: each generation runs inside an OpenTelemetry span
//     when a pipeline is installed, and stays silent when not
//
// Under the hood, everything is organized per subpackage:
//
//	core/      — Grid, Field, Maze, Direction, options & sentinel errors
//	backtrack/ — randomized depth-first backtracker
//	ellers/    — Eller's row-streaming algorithm, O(width) working memory
//	growtree/  — growing tree with pluggable cell selection
//	prims/     — randomized Prim's frontier growth
//	wilson/    — Wilson's loop-erased random walks
//	mazetest/  — the generator conformance suite, exported for reuse
//	telemetry/ — OTLP trace pipeline setup shared by the examples
//
// Quick ASCII example (3×2, rendered by Maze.String):
//
//	·-·-·-·
//	|S   G|
//	· ·-· ·
//	|   | |
//	·-·-·-·
//
// Start at S, goal at G, exactly one corridor between them.
//
// Dive into the per-package docs for the algorithm essays, policies,
// and complexity notes.
//
//	go get github.com/daedalab/mazegen
package mazegen
