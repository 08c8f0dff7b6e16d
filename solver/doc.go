// Package solver implements the five path-finding algorithms that run over a
// carved maze: breadth-first search, depth-first search, Dijkstra, A* with a
// Manhattan heuristic, and the right-hand wall follower.
//
// What
//
// A Solver walks the open passages of a *maze.Grid from its start marker to
// its end marker and reports the route as an ordered cell slice, start first.
// On a perfect maze the route is unique; the algorithms differ in how much of
// the grid they explore finding it and in whether they guarantee optimality:
//
//   - BFS:           shortest path, explores in distance rings.
//   - DFS:           some path, usually not the shortest exploration order.
//   - Dijkstra:      shortest path via a min-heap; on unit-cost grids it
//     degenerates to BFS with heap overhead.
//   - A*:            shortest path, steered by the Manhattan distance to the
//     end cell, typically visiting far fewer cells.
//   - Wall follower: keeps one hand on the right wall; the path may revisit
//     cells, and the route exists only when start and end share a wall
//     circuit (always true on a perfect maze).
//
// Contract
//
// Solve clears previous solution state first (distances, parents, the stored
// path), then writes the fresh route back onto the grid so renderers can pick
// it up via Grid.SolutionPath. Three outcomes are possible:
//
//   - a non-empty path and nil error — solved; path[0] is the start cell,
//     the last element is the end cell.
//   - an empty path and nil error — nothing to solve: one or both endpoints
//     are unset, or no route exists between them.
//   - a nil path and ErrNilGrid — the grid itself was nil.
//
// Bookkeeping differs per algorithm, matching what each one needs: BFS and
// Dijkstra leave ring distances on every reached cell, A* leaves g-scores on
// the cells it touched, DFS and the wall follower set no distances at all.
//
// Errors
//
//   - ErrNilGrid          — Solve received a nil grid.
//   - ErrUnknownAlgorithm — New received a name outside Names().
//
// Construct solvers directly (NewBFS, NewAStar, ...) or by registry name via
// New("astar"). The registry also accepts the spelled-out aliases "a-star",
// "breadth-first" and "depth-first".
package solver
