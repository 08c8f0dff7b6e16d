// Package maze - Grid: the W×H cell matrix and every sanctioned mutation on it.
package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Grid is a rectangular maze: a fixed W×H matrix of cells, up to one start
// and one end cell, and the solution path recorded by the most recent solve.
//
// The Grid owns its cells for their whole lifetime; start/end are pointers
// into the owned matrix, never separate copies. A Grid must not be mutated
// from multiple goroutines at once — each instance is exclusively owned by
// the caller driving it.
type Grid struct {
	width  int
	height int
	cells  [][]*Cell // indexed [y][x]

	start    *Cell
	end      *Cell
	solution []*Cell
}

// New constructs a fully-walled grid of the given dimensions.
// Returns ErrInvalidDimensions when width or height is < 1.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]*Cell, height)
	for y := 0; y < height; y++ {
		row := make([]*Cell, width)
		for x := 0; x < width; x++ {
			row[x] = newCell(x, y)
		}
		cells[y] = row
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellAt returns the cell at (x, y), or nil when the coordinates fall
// outside [0,width)×[0,height). Out-of-range lookup is not an error.
func (g *Grid) CellAt(x, y int) *Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}

	return g.cells[y][x]
}

// Neighbors returns the up-to-four adjacent cells that exist within bounds,
// in Directions order, regardless of walls.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	if c == nil {
		return nil
	}

	neighbors := make([]*Cell, 0, 4)
	for _, d := range Directions {
		dx, dy := d.Delta()
		if n := g.CellAt(c.X+dx, c.Y+dy); n != nil {
			neighbors = append(neighbors, n)
		}
	}

	return neighbors
}

// UnvisitedNeighbors returns the subset of Neighbors whose visited flag is
// still false. Generators use it to find carving candidates.
func (g *Grid) UnvisitedNeighbors(c *Cell) []*Cell {
	all := g.Neighbors(c)
	unvisited := all[:0]
	for _, n := range all {
		if !n.visited {
			unvisited = append(unvisited, n)
		}
	}

	return unvisited
}

// RemoveWallBetween carves a passage between two grid-adjacent cells,
// clearing the facing wall on both sides. It returns false — and changes
// nothing — when either cell is nil or the cells are not adjacent
// (Manhattan distance ≠ 1). This is the only way passages are opened,
// which is what keeps wall state symmetric.
func (g *Grid) RemoveWallBetween(a, b *Cell) bool {
	d, ok := directionBetween(a, b)
	if !ok {
		return false
	}

	a.removeWall(d)
	b.removeWall(d.Opposite())

	return true
}

// directionBetween resolves the direction leading from a to b when the two
// cells are exactly one step apart.
func directionBetween(a, b *Cell) (Direction, bool) {
	if a == nil || b == nil {
		return North, false
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 1 && dy == 0:
		return East, true
	case dx == -1 && dy == 0:
		return West, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == 0 && dy == -1:
		return North, true
	}

	return North, false
}

// SetStart marks the cell at (x, y) as the start, clearing the previous
// start flag if one was set. Returns false when (x, y) is out of bounds.
func (g *Grid) SetStart(x, y int) bool {
	cell := g.CellAt(x, y)
	if cell == nil {
		return false
	}

	if g.start != nil {
		g.start.isStart = false
	}
	g.start = cell
	cell.isStart = true

	return true
}

// SetEnd marks the cell at (x, y) as the end, clearing the previous end
// flag if one was set. Returns false when (x, y) is out of bounds.
func (g *Grid) SetEnd(x, y int) bool {
	cell := g.CellAt(x, y)
	if cell == nil {
		return false
	}

	if g.end != nil {
		g.end.isEnd = false
	}
	g.end = cell
	cell.isEnd = true

	return true
}

// Start returns the current start cell, or nil when none is set.
func (g *Grid) Start() *Cell { return g.start }

// End returns the current end cell, or nil when none is set.
func (g *Grid) End() *Cell { return g.end }

// ResetVisited clears the visited flag on every cell, readying the grid for
// a fresh generation pass.
func (g *Grid) ResetVisited() {
	for _, row := range g.cells {
		for _, c := range row {
			c.visited = false
		}
	}
}

// ResetWalls restores all four walls on every cell. Together with
// ResetVisited this returns the grid to its just-constructed state, which
// makes generation idempotent on the same Grid instance.
func (g *Grid) ResetWalls() {
	for _, row := range g.cells {
		for _, c := range row {
			c.restoreWalls()
		}
	}
}

// ResetSolution clears the recorded solution path and every cell's
// distance/parent scratch state. It never touches visited flags (owned by
// generation) or walls. Every solver calls this before searching.
func (g *Grid) ResetSolution() {
	g.solution = nil
	for _, row := range g.cells {
		for _, c := range row {
			c.distance = DistanceUnset
			c.parent = nil
		}
	}
}

// RandomCell returns a uniformly random cell drawn with r. When r is nil a
// throwaway time-seeded source is used, so bare calls still vary per run.
func (g *Grid) RandomCell(r *rand.Rand) *Cell {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g.cells[r.Intn(g.height)][r.Intn(g.width)]
}

// Cells returns every cell in row-major order (left to right, top to
// bottom). The slice is freshly allocated; the cells are the grid's own.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.width*g.height)
	for _, row := range g.cells {
		out = append(out, row...)
	}

	return out
}

// SolutionPath returns the path recorded by the most recent solve,
// or an empty slice when unsolved.
func (g *Grid) SolutionPath() []*Cell { return g.solution }

// SetSolutionPath records path as the grid's current solution.
// Solvers call this as their observable side effect on success.
func (g *Grid) SetSolutionPath(path []*Cell) { g.solution = path }

// RemovedWalls counts the internal walls carved away so far. Every removal
// clears one wall bit on each side, so the per-cell deficit halves into the
// number of passages. A perfect maze has exactly Width*Height-1 of them.
func (g *Grid) RemovedWalls() int {
	missing := 0
	for _, row := range g.cells {
		for _, c := range row {
			missing += 4 - c.wallCount()
		}
	}

	return missing / 2
}

// String renders a short identity like Maze(10x8) for logs.
func (g *Grid) String() string { return fmt.Sprintf("Maze(%dx%d)", g.width, g.height) }
