// Package solver - Dijkstra's algorithm on unit passage costs.
package solver

import (
	"container/heap"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// Dijkstra finds the shortest route by processing cells in order of
// increasing distance from the start, using a min-heap with the
// lazy-decrease-key pattern: improvements push duplicate heap entries, and
// stale ones are skipped at pop time via the visited set. Every finalized
// cell is left carrying its distance.
//
// All passages cost 1 here, so Dijkstra returns the same route length as BFS;
// it exists for parity with the weighted-grid variants and as a baseline the
// A* heuristic is measured against.
//
// Complexity: O(W·H·log(W·H)) time, O(W·H) space.
type Dijkstra struct{}

// NewDijkstra returns a Dijkstra solver.
func NewDijkstra() *Dijkstra {
	return &Dijkstra{}
}

// Solve implements Solver.
func (s *Dijkstra) Solve(g *maze.Grid) ([]*maze.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, nil
	}
	g.ResetSolution()

	r := &dijkstraRun{
		g:       g,
		end:     end,
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

// dijkstraRun holds the mutable state of a single Solve execution.
type dijkstraRun struct {
	g       *maze.Grid
	end     *maze.Cell
	visited map[*maze.Cell]bool // distance finalized
	pq      cellPQ
}

// init zeroes the start distance and primes the heap with it.
func (r *dijkstraRun) init(start *maze.Cell) {
	start.SetDistance(0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: start, priority: 0})
}

// process pops cells in increasing-distance order until the end cell is
// finalized or the heap runs dry. Returns the reached end cell, or nil when
// no route exists.
func (r *dijkstraRun) process() *maze.Cell {
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
		r.relax(current, item.priority)
	}
	return nil
}

// relax tries to improve the distance of every passage neighbor of current.
// dist is the finalized distance of current as popped from the heap.
func (r *dijkstraRun) relax(current *maze.Cell, dist int) {
	for _, nb := range accessibleNeighbors(r.g, current) {
		if r.visited[nb] {
			continue
		}
		next := dist + 1
		if d := nb.Distance(); d != maze.DistanceUnset && next >= d {
			continue // no strict improvement; avoids duplicate pushes on ties
		}
		nb.SetDistance(next)
		nb.SetParent(current)
		heap.Push(&r.pq, &cellItem{cell: nb, priority: next})
	}
}

// cellItem is one heap entry: a cell and the priority it was pushed with.
// Dijkstra pushes plain distances; A* pushes f-scores through the same queue.
type cellItem struct {
	cell     *maze.Cell
	priority int
}

// cellPQ is a min-heap of *cellItem ordered by priority ascending, used with
// the lazy-decrease-key pattern: outdated entries stay in the heap and are
// discarded when popped.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority → popped first.
func (pq cellPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element. Called by heap.Pop after the
// smallest item has been swapped to the end.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
