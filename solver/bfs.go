// Package solver - breadth-first search.
package solver

import "github.com/refactornator/procedural-maze-generator/maze"

// BFS explores the maze in distance rings around the start cell, so the first
// time it dequeues the end cell the route is provably shortest. Every reached
// cell is left carrying its ring distance from the start.
//
// Complexity: O(W·H) time and space.
type BFS struct{}

// NewBFS returns a breadth-first solver.
func NewBFS() *BFS {
	return &BFS{}
}

// Solve implements Solver.
func (s *BFS) Solve(g *maze.Grid) ([]*maze.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, nil
	}
	g.ResetSolution()

	queue := []*maze.Cell{start}
	start.SetDistance(0)
	seen := map[*maze.Cell]bool{start: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// End test happens at dequeue time: by then the ring distance of
		// current is final.
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
			nb.SetDistance(current.Distance() + 1)
			nb.SetParent(current)
			queue = append(queue, nb)
		}
	}
	return nil, nil
}
