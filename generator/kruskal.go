// Package generator - Kruskal over a shuffled wall list.
package generator

import (
	"github.com/spakin/disjoint"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// wall is one interior wall between two adjacent cells. Enumerating the east
// and south wall of every cell lists each interior wall exactly once.
type wall struct {
	a *maze.Cell
	b *maze.Cell
}

// Kruskal carves by visiting every interior wall in uniformly random order
// and opening it whenever its two sides still belong to different components,
// tracked with disjoint-set union (path compression + union by rank). The
// texture is locally uniform: there is no growth center at all.
//
// Unlike the tree-growing algorithms, Kruskal never reads or writes cell
// visited flags; component membership lives entirely in the disjoint sets.
//
// Complexity: O(W·H·α(W·H)) time, O(W·H) space.
type Kruskal struct {
	opts Options
}

// NewKruskal returns a Kruskal generator configured with opts.
func NewKruskal(opts ...Option) *Kruskal {
	return &Kruskal{opts: applyOptions(opts)}
}

// Generate implements Generator.
func (k *Kruskal) Generate(g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	resetForGenerate(g)
	r := newRNG(k.opts)

	cells := g.Cells()
	sets := make(map[*maze.Cell]*disjoint.Element, len(cells))
	for _, c := range cells {
		sets[c] = disjoint.NewElement()
	}

	walls := make([]wall, 0, 2*len(cells))
	for _, c := range cells {
		if east := g.CellAt(c.X+1, c.Y); east != nil {
			walls = append(walls, wall{a: c, b: east})
		}
		if south := g.CellAt(c.X, c.Y+1); south != nil {
			walls = append(walls, wall{a: c, b: south})
		}
	}
	shuffleWallsInPlace(walls, r)

	for _, w := range walls {
		if sets[w.a].Find() == sets[w.b].Find() {
			continue // same component: opening w would close a cycle
		}
		disjoint.Union(sets[w.a], sets[w.b])
		g.RemoveWallBetween(w.a, w.b)
	}
	return nil
}
