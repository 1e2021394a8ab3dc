// Package core provides the maze data model and the generation
// contract shared by every algorithm package: a rectangular Grid of
// Fields carved by symmetric passages, the immutable Maze artifact
// with start/goal endpoints and shape metadata, and the Generator
// interface plus per-call Options.
//
// The model, in one pass:
//
//   - Coordinate (X, Y): zero-based cell address; (0,0) top-left,
//     Y grows downward.
//   - Direction: North, East, South, West in canonical enumeration
//     order, with Opposite() and Offset() for mirroring and movement.
//   - Field: one cell's open-passage set (a four-bit mask) plus the
//     transient visited marker used while carving. Value semantics.
//   - Grid: row-major mutable storage owned by exactly one Generate
//     call; OpenPassage carves both sides at once so the passage graph
//     is undirected and symmetric at every moment.
//   - Maze: the sealed, immutable result: grid, start, goal, and
//     Metadata (algorithm name, seed, xxHash shape checksum, SHA1
//     content-derived UUID).
//
// Why a bitmask grid instead of a general graph?
//
//   - The passage graph of a rectangular maze is 4-regular at most;
//     one byte per cell captures it exactly.
//   - Row-major indexing (y*width + x) keeps carving allocation-free
//     after the initial slab.
//   - Symmetry is enforced structurally: the only write path is
//     OpenPassage, which mirrors the opening on the neighbor.
//
// Generation contract (Generator):
//
//	Generate(width, height, opts...) (*Maze, error)
//
//   - Dimensions below 1 fail with ErrInvalidDimensions before any
//     allocation or random draw.
//   - WithSeed(s) makes runs reproducible: equal dimensions and seed
//     give field-for-field identical mazes (equal Checksum and ID).
//   - Without a seed, each call draws fresh entropy; the drawn seed is
//     still recorded in Metadata.Seed for after-the-fact replay.
//   - WithRand(r) injects an explicit source (recorded as
//     non-reproducible). WithContext(ctx) parents the trace span and
//     never cancels generation.
//   - Generate never panics on invalid input and never aborts the
//     process; all failures are returned errors.
//
// Bounds discipline:
//
//   - Accessors (FieldAt) return ErrOutOfBounds for coordinates
//     outside the grid, a recoverable condition for callers probing
//     arbitrary coordinates.
//   - Mutators used during carving (OpenPassage, Visit, Visited) panic
//     on out-of-bounds cells: the algorithm is responsible for
//     bounds-checking before carving, so an escape is a programming
//     error, never a recoverable state.
//
// Concurrency:
//
//   - Generator implementations are stateless; each Generate call owns
//     a private Grid and a call-local rand source, so concurrent calls
//     need no synchronization.
//   - A returned Maze is immutable and safe to share across
//     goroutines.
//
// Errors:
//
//	ErrInvalidDimensions – width or height below 1 (the only Generate error)
//	ErrOutOfBounds       – accessor coordinate outside the grid
//	ErrNilGrid           – NewMaze received a nil grid
//	ErrGoalEqualsStart   – NewMaze endpoints coincide on a multi-cell grid
package core
