// Package generator - the depth-first backtracker.
package generator

import "github.com/refactornator/procedural-maze-generator/maze"

// DFS carves with the iterative depth-first backtracker: dive toward a random
// unvisited neighbor, carve through, and backtrack once boxed in. The bias
// toward deep recursion yields long winding corridors and few, long dead ends.
//
// Complexity: O(W·H) time, O(W·H) worst-case stack.
type DFS struct {
	opts Options
}

// NewDFS returns a depth-first backtracker configured with opts.
func NewDFS(opts ...Option) *DFS {
	return &DFS{opts: applyOptions(opts)}
}

// Generate implements Generator.
func (d *DFS) Generate(g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	resetForGenerate(g)
	r := newRNG(d.opts)

	current := g.RandomCell(r)
	current.SetVisited(true)
	stack := []*maze.Cell{current}

	for len(stack) > 0 {
		// Work from the top of the stack without popping: the cell stays
		// until all of its neighbors have been consumed.
		current = stack[len(stack)-1]

		unvisited := g.UnvisitedNeighbors(current)
		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1] // boxed in: backtrack
			continue
		}

		next := unvisited[r.Intn(len(unvisited))]
		next.SetVisited(true)
		g.RemoveWallBetween(current, next)
		stack = append(stack, next)
	}
	return nil
}
