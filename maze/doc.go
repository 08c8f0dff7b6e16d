// Package maze defines the rectangular grid model shared by every
// generation and solving algorithm in this module.
//
// What:
//
//   - Direction — the four cardinal moves with (dx,dy) deltas and opposites;
//     y grows downward, so North is (0,−1).
//   - Cell — one grid position: coordinates, the set of walls still present,
//     a generation-time visited flag, and solve-time scratch state
//     (tentative distance, parent back-reference).
//   - Grid — owns the W×H cell matrix, start/end bookkeeping, and the most
//     recent solution path. All wall carving goes through the Grid so the
//     symmetric-wall invariant can never be broken from outside.
//
// Invariants:
//
//   - Wall symmetry: if cell A has no wall toward adjacent cell B, then B
//     has no wall toward A. RemoveWallBetween is the only carve operation
//     and always clears both sides.
//   - After a generator succeeds, the passage graph is a spanning tree:
//     exactly W×H−1 walls removed and every cell reachable (a perfect maze).
//     Validate checks both, plus symmetry.
//
// Resets are scoped: ResetVisited clears generation state, ResetSolution
// clears solve state (distances, parents, the recorded path) and never
// touches walls or visited flags, ResetWalls restores the fully-walled
// state so generation is restartable on the same Grid.
//
// Complexity:
//
//   - CellAt / RemoveWallBetween / SetStart / SetEnd: O(1).
//   - Neighbors / UnvisitedNeighbors: O(1) (at most four lookups).
//   - Resets, Cells, Validate: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height < 1 at construction.
//   - ErrAsymmetricWalls, ErrDisconnected, ErrNotPerfect: structural
//     violations reported by Validate.
//   - ErrEmptySolution, ErrSolutionEndpoints, ErrSolutionBroken: reported
//     by ValidateSolution.
//
// The package is not safe for concurrent mutation of a single Grid;
// callers own their Grids exclusively while an algorithm runs (see the
// generator and solver packages).
package maze
