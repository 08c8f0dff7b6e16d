// Package solver - Solver contract, sentinel errors, and the name registry.
package solver

import (
	"errors"
	"fmt"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// ErrNilGrid indicates that Solve received a nil *maze.Grid.
var ErrNilGrid = errors.New("solver: nil grid")

// ErrUnknownAlgorithm indicates that New was asked for a name outside Names().
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Registered algorithm names, accepted by New.
const (
	// AlgorithmAStar selects A* with the Manhattan-distance heuristic.
	AlgorithmAStar = "astar"

	// AlgorithmDijkstra selects Dijkstra's algorithm on unit passage costs.
	AlgorithmDijkstra = "dijkstra"

	// AlgorithmBFS selects breadth-first search.
	AlgorithmBFS = "bfs"

	// AlgorithmDFS selects depth-first search.
	AlgorithmDFS = "dfs"

	// AlgorithmWallFollower selects the right-hand wall follower.
	AlgorithmWallFollower = "wall-follower"
)

// Spelled-out synonyms accepted by New. Aliases resolve but are not listed
// by Names().
const (
	aliasAStar        = "a-star"
	aliasBreadthFirst = "breadth-first"
	aliasDepthFirst   = "depth-first"
)

// Solver finds a route through the open passages of a carved maze.
//
// Implementations clear previous solution state first (ResetSolution), so one
// Solver may be reused across grids and invocations, and solvers may be run
// one after another on the same grid.
type Solver interface {
	// Solve walks g from its start marker to its end marker. It returns the
	// route as an ordered cell slice (start first) and stores it on the grid.
	// An empty path with a nil error means no route: endpoints unset or
	// unreachable. A nil grid yields ErrNilGrid.
	Solve(g *maze.Grid) ([]*maze.Cell, error)
}

// New builds the Solver registered under name. Accepted names:
// AlgorithmAStar, AlgorithmDijkstra, AlgorithmBFS, AlgorithmDFS,
// AlgorithmWallFollower, plus the aliases "a-star", "breadth-first" and
// "depth-first". Any other name yields ErrUnknownAlgorithm.
func New(name string) (Solver, error) {
	switch name {
	case AlgorithmAStar, aliasAStar:
		return NewAStar(), nil
	case AlgorithmDijkstra:
		return NewDijkstra(), nil
	case AlgorithmBFS, aliasBreadthFirst:
		return NewBFS(), nil
	case AlgorithmDFS, aliasDepthFirst:
		return NewDFS(), nil
	case AlgorithmWallFollower:
		return NewWallFollower(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists the registered algorithm names in stable order.
// The slice is fresh on every call; callers may mutate it.
func Names() []string {
	return []string{AlgorithmAStar, AlgorithmDijkstra, AlgorithmBFS, AlgorithmDFS, AlgorithmWallFollower}
}
