// Package maze - Cell: one grid position with walls and solve scratch state.
package maze

import "fmt"

// Cell is a single position in the grid. X and Y identify it uniquely within
// its Grid and never change after construction; two cells are considered
// equal when their coordinates match.
//
// The wall set starts with all four walls present. Walls are only ever
// cleared through Grid.RemoveWallBetween (and restored through
// Grid.ResetWalls), which keeps wall state symmetric between neighbors.
//
// visited belongs to the generation phase (spanning-tree membership);
// distance and parent are the transient workspace of whichever solve call
// is currently running and are wiped by Grid.ResetSolution.
type Cell struct {
	X, Y int

	walls    uint8
	visited  bool
	isStart  bool
	isEnd    bool
	distance int
	parent   *Cell
}

// newCell builds a fully-walled cell at (x, y) with no scratch state.
func newCell(x, y int) *Cell {
	return &Cell{X: x, Y: y, walls: allWalls, distance: DistanceUnset}
}

// HasWall reports whether the wall in direction d is still present.
func (c *Cell) HasWall(d Direction) bool { return c.walls&d.bit() != 0 }

// removeWall clears the wall in direction d. Grid-internal: callers carve
// through Grid.RemoveWallBetween so both sides stay in sync.
func (c *Cell) removeWall(d Direction) { c.walls &^= d.bit() }

// restoreWalls puts all four walls back.
func (c *Cell) restoreWalls() { c.walls = allWalls }

// wallCount returns how many of the four walls are still present.
func (c *Cell) wallCount() int {
	n := 0
	for _, d := range Directions {
		if c.HasWall(d) {
			n++
		}
	}

	return n
}

// Visited reports whether a generator has already claimed this cell for the
// spanning tree.
func (c *Cell) Visited() bool { return c.visited }

// SetVisited marks or unmarks the cell as part of the tree under construction.
func (c *Cell) SetVisited(v bool) { c.visited = v }

// IsStart reports whether this cell is the grid's start.
func (c *Cell) IsStart() bool { return c.isStart }

// IsEnd reports whether this cell is the grid's end.
func (c *Cell) IsEnd() bool { return c.isEnd }

// Distance returns the tentative cost from start assigned by the running
// solve call, or DistanceUnset when no solver has reached the cell.
func (c *Cell) Distance() int { return c.distance }

// SetDistance records a tentative cost from start.
func (c *Cell) SetDistance(d int) { c.distance = d }

// Parent returns the predecessor on the best-known path from start,
// or nil before solving.
func (c *Cell) Parent() *Cell { return c.parent }

// SetParent records the predecessor on the best-known path.
func (c *Cell) SetParent(p *Cell) { c.parent = p }

// Equal reports coordinate equality, the identity notion used throughout:
// cells from different grids compare equal when they sit at the same (x, y).
func (c *Cell) Equal(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}

	return c.X == o.X && c.Y == o.Y
}

// String renders the cell as Cell(x, y) for logs and test failures.
func (c *Cell) String() string { return fmt.Sprintf("Cell(%d, %d)", c.X, c.Y) }
