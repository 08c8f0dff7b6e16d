// Package solver - depth-first search.
package solver

import "github.com/refactornator/procedural-maze-generator/maze"

// DFS dives along passages until it stumbles onto the end cell. The route it
// finds is a valid one but carries no optimality guarantee; on a perfect maze
// the unique start→end route makes the returned path shortest anyway. DFS
// records parents only — no distances.
//
// Complexity: O(W·H) time and space.
type DFS struct{}

// NewDFS returns a depth-first solver.
func NewDFS() *DFS {
	return &DFS{}
}

// Solve implements Solver.
func (s *DFS) Solve(g *maze.Grid) ([]*maze.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, nil
	}
	g.ResetSolution()

	stack := []*maze.Cell{start}
	seen := map[*maze.Cell]bool{start: true}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == end {
			path := reconstructPath(current)
			g.SetSolutionPath(path)
			return path, nil
		}

		for _, nb := range accessibleNeighbors(g, current) {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			nb.SetParent(current)
			stack = append(stack, nb)
		}
	}
	return nil, nil
}
