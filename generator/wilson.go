// Package generator - Wilson's loop-erased random walk.
package generator

import (
	"math/rand"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// Wilson carves with Wilson's algorithm: seed the tree with one random cell,
// then repeatedly launch a random walk from a cell outside the tree, erase
// every loop the walk closes, and carve the surviving path once the walk hits
// the tree. The resulting maze is sampled uniformly from all spanning trees
// of the grid — no directional bias, at the cost of slow early walks.
//
// Complexity: O(W·H) space; expected time is grid-dependent (cover-time
// bound), typically the slowest of the four algorithms.
type Wilson struct {
	opts Options
}

// NewWilson returns a Wilson generator configured with opts.
func NewWilson(opts ...Option) *Wilson {
	return &Wilson{opts: applyOptions(opts)}
}

// Generate implements Generator.
func (w *Wilson) Generate(g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	resetForGenerate(g)
	r := newRNG(w.opts)

	g.RandomCell(r).SetVisited(true)

	outside := make([]*maze.Cell, 0, g.Width()*g.Height()-1)
	for _, c := range g.Cells() {
		if !c.Visited() {
			outside = append(outside, c)
		}
	}

	for len(outside) > 0 {
		start := outside[r.Intn(len(outside))]
		path := loopErasedWalk(g, start, r)

		// Carve the surviving path. The final cell on it was already in the
		// tree; every earlier cell joins now.
		for i := 0; i+1 < len(path); i++ {
			path[i].SetVisited(true)
			g.RemoveWallBetween(path[i], path[i+1])
		}

		// Compact the pool in place, keeping only cells still outside.
		alive := outside[:0]
		for _, c := range outside {
			if !c.Visited() {
				alive = append(alive, c)
			}
		}
		outside = alive
	}
	return nil
}

// loopErasedWalk performs one random walk from start until it first touches a
// visited (in-tree) cell, erasing loops as it goes: whenever the walk steps
// onto a cell already on its path, the path is truncated back to that first
// visit. Walls are ignored — the walk moves over the raw grid.
//
// Every grid with two or more cells gives each cell at least one neighbor,
// and 1×1 grids never reach this point, so the walk always makes progress.
func loopErasedWalk(g *maze.Grid, start *maze.Cell, r *rand.Rand) []*maze.Cell {
	path := []*maze.Cell{start}
	current := start

	for !current.Visited() {
		neighbors := g.Neighbors(current)
		next := neighbors[r.Intn(len(neighbors))]

		if i := indexOfCell(path, next); i >= 0 {
			path = path[:i+1] // loop erased
		} else {
			path = append(path, next)
		}
		current = next
	}
	return path
}

// indexOfCell returns the position of c on path, or -1 when absent.
// Pointer identity suffices: every cell on a walk comes from one grid.
func indexOfCell(path []*maze.Cell, c *maze.Cell) int {
	for i, p := range path {
		if p == c {
			return i
		}
	}
	return -1
}
