// Package generator implements the four maze-carving algorithms: the
// depth-first backtracker, randomized Prim, Kruskal over a shuffled wall
// list, and Wilson's loop-erased random walk.
//
// What
//
// Every algorithm produces a perfect maze: a spanning tree of the W×H grid
// in which exactly W·H−1 walls have been opened, every cell is reachable
// from every other, and no route forms a cycle. The algorithms differ only
// in texture — which spanning tree they are biased toward:
//
//   - DFS: long winding corridors, few but deep dead ends.
//   - Prim: short twisty dead ends radiating from the seed cell.
//   - Kruskal: uniform local texture, no growth center at all.
//   - Wilson: uniform over ALL spanning trees (no bias), slower start.
//
// Contract
//
// Generate resets the grid first (all walls restored, all visited flags
// cleared), so generators are reusable across grids and invocations. Start
// and end markers on the grid survive regeneration. After the tree-growing
// algorithms (DFS, Prim, Wilson) every cell carries visited=true; Kruskal
// tracks components in disjoint sets instead and leaves the flags untouched.
//
// Determinism
//
//   - WithSeed(s) pins the pseudo-random stream: the same seed, algorithm
//     and dimensions reproduce the same maze, run after run. Every int64 is
//     a valid seed, including zero.
//   - Without WithSeed, each Generate call draws a fresh stream from the
//     wall clock.
//   - One *rand.Rand is built per Generate invocation and never shared, so
//     distinct Generator values may run concurrently on distinct grids.
//
// Errors
//
//   - ErrNilGrid          — Generate received a nil grid.
//   - ErrUnknownAlgorithm — New received a name outside Names().
//
// Construct generators directly (NewDFS, NewPrim, NewKruskal, NewWilson) or
// by registry name via New("kruskal", WithSeed(7)).
package generator
