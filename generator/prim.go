// Package generator - randomized-frontier Prim.
package generator

import "github.com/refactornator/procedural-maze-generator/maze"

// frontierWall is one candidate wall on the boundary of the growing tree:
// inside was already part of the maze when the wall was pushed, outside was
// not. Both sides may have joined since; Generate re-checks at pop time.
type frontierWall struct {
	inside  *maze.Cell
	outside *maze.Cell
}

// Prim carves with the randomized-frontier variant of Prim's algorithm: grow
// the maze one cell at a time by opening a uniformly random wall on the
// frontier. The texture is busier than DFS — many short dead ends radiating
// from the seed cell.
//
// Complexity: O(W·H) time amortized, O(W·H) frontier space.
type Prim struct {
	opts Options
}

// NewPrim returns a randomized Prim generator configured with opts.
func NewPrim(opts ...Option) *Prim {
	return &Prim{opts: applyOptions(opts)}
}

// Generate implements Generator.
func (p *Prim) Generate(g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	resetForGenerate(g)
	r := newRNG(p.opts)

	seed := g.RandomCell(r)
	seed.SetVisited(true)
	frontier := appendFrontierWalls(g, nil, seed)

	for len(frontier) > 0 {
		// Pull a uniformly random candidate. Order never matters here, so
		// the hole is plugged with the last element instead of shifting.
		i := r.Intn(len(frontier))
		w := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if w.inside.Visited() == w.outside.Visited() {
			continue // both sides joined the tree since the push
		}
		w.outside.SetVisited(true)
		g.RemoveWallBetween(w.inside, w.outside)
		frontier = appendFrontierWalls(g, frontier, w.outside)
	}
	return nil
}

// appendFrontierWalls pushes every wall of c that faces an unvisited neighbor
// onto walls and returns the extended slice.
func appendFrontierWalls(g *maze.Grid, walls []frontierWall, c *maze.Cell) []frontierWall {
	for _, nb := range g.UnvisitedNeighbors(c) {
		walls = append(walls, frontierWall{inside: c, outside: nb})
	}
	return walls
}
