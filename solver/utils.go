// Package solver - plumbing shared by every path-finder.
package solver

import "github.com/refactornator/procedural-maze-generator/maze"

// accessibleNeighbors lists the cells reachable from c through open walls, in
// the canonical North, South, East, West probe order. Border directions with
// no cell behind them are skipped.
func accessibleNeighbors(g *maze.Grid, c *maze.Cell) []*maze.Cell {
	neighbors := make([]*maze.Cell, 0, 4)
	for _, d := range maze.Directions {
		if c.HasWall(d) {
			continue
		}
		dx, dy := d.Delta()
		if nb := g.CellAt(c.X+dx, c.Y+dy); nb != nil {
			neighbors = append(neighbors, nb)
		}
	}
	return neighbors
}

// reconstructPath walks parent pointers back from end and reverses the chain,
// yielding the route start-first. The caller guarantees the parent chain is
// acyclic (every solver writes each cell's parent at most once per run).
func reconstructPath(end *maze.Cell) []*maze.Cell {
	var path []*maze.Cell
	for c := end; c != nil; c = c.Parent() {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// manhattan is the L1 distance between two cells: the A* heuristic. On a grid
// with unit moves it never overestimates, which keeps A* optimal.
func manhattan(a, b *maze.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
