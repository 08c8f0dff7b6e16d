// Package solver - A* with the Manhattan-distance heuristic.
package solver

import (
	"container/heap"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// AStar finds the shortest route like Dijkstra but steers the search toward
// the end cell: the heap is ordered by f = g + h, where g is the cost walked
// so far and h the Manhattan distance still to cover. Manhattan never
// overestimates on a unit grid, so the first finalization of the end cell is
// optimal. Touched cells are left carrying their g-score as distance.
//
// Complexity: O(W·H·log(W·H)) worst case, usually far fewer cells explored.
type AStar struct{}

// NewAStar returns an A* solver.
func NewAStar() *AStar {
	return &AStar{}
}

// Solve implements Solver.
func (s *AStar) Solve(g *maze.Grid) ([]*maze.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, nil
	}
	g.ResetSolution()

	r := &astarRun{
		g:       g,
		end:     end,
		gScores: make(map[*maze.Cell]int),
		visited: make(map[*maze.Cell]bool),
		pq:      make(cellPQ, 0, g.Width()*g.Height()),
	}
	r.init(start)

	reached := r.process()
	if reached == nil {
		return nil, nil
	}
	path := reconstructPath(reached)
	g.SetSolutionPath(path)
	return path, nil
}

// astarRun holds the mutable state of a single Solve execution. The f-score
// of an entry lives on the heap item itself; only g-scores need a map.
type astarRun struct {
	g       *maze.Grid
	end     *maze.Cell
	gScores map[*maze.Cell]int
	visited map[*maze.Cell]bool // f finalized
	pq      cellPQ
}

// init scores the start cell and primes the heap with its heuristic value.
func (r *astarRun) init(start *maze.Cell) {
	start.SetDistance(0)
	r.gScores[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: start, priority: manhattan(start, r.end)})
}

// process pops cells in increasing f order until the end cell is finalized or
// the heap runs dry. Returns the reached end cell, or nil when no route exists.
func (r *astarRun) process() *maze.Cell {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		current := item.cell

		if r.visited[current] {
			continue // stale entry left behind by lazy-decrease-key
		}
		r.visited[current] = true

		if current == r.end {
			return current
		}
		r.relax(current)
	}
	return nil
}

// relax tries to improve the g-score of every passage neighbor of current and
// pushes improvements with their f-score as heap priority.
func (r *astarRun) relax(current *maze.Cell) {
	for _, nb := range accessibleNeighbors(r.g, current) {
		if r.visited[nb] {
			continue
		}
		tentative := r.gScores[current] + 1
		if known, ok := r.gScores[nb]; ok && tentative >= known {
			continue
		}
		nb.SetParent(current)
		nb.SetDistance(tentative)
		r.gScores[nb] = tentative
		heap.Push(&r.pq, &cellItem{cell: nb, priority: tentative + manhattan(nb, r.end)})
	}
}
