// Package solver - the right-hand wall follower.
package solver

import "github.com/refactornator/procedural-maze-generator/maze"

// WallFollower solves by keeping one hand on the right wall: at every step it
// turns right when the right side is open, otherwise walks straight, otherwise
// rotates left in place. On a perfect maze all walls hang off one circuit, so
// the rule always reaches the end. On mazes with cycles the follower can orbit
// a detached wall island forever; the (x, y, facing) state set detects this,
// since revisiting the same pose proves no route will ever be found.
//
// The returned path is the literal walk, dead-end excursions included, so
// cells may repeat. No distances or parents are recorded.
//
// Complexity: O(W·H) states, each visited at most four times (once per facing).
type WallFollower struct{}

// NewWallFollower returns a right-hand wall-follower solver.
func NewWallFollower() *WallFollower {
	return &WallFollower{}
}

// pose is one loop-detection state: a cell position plus the walker's facing.
type pose struct {
	x, y   int
	facing maze.Direction
}

// Solve implements Solver.
func (s *WallFollower) Solve(g *maze.Grid) ([]*maze.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, nil
	}
	g.ResetSolution()

	current := start
	path := []*maze.Cell{current}
	seen := make(map[pose]bool)
	facing := maze.North

	for current != end {
		p := pose{x: current.X, y: current.Y, facing: facing}
		if seen[p] {
			return nil, nil // full circuit walked without touching the end
		}
		seen[p] = true

		// Hug the right wall: turn into the right opening when there is one...
		if right := turnRight(facing); !current.HasWall(right) {
			facing = right
			if next := step(g, current, facing); next != nil {
				current = next
				path = append(path, current)
				continue
			}
		}
		// ...otherwise keep straight through an open front...
		if !current.HasWall(facing) {
			if next := step(g, current, facing); next != nil {
				current = next
				path = append(path, current)
				continue
			}
		}
		// ...otherwise rotate left in place and reassess.
		facing = turnLeft(facing)
	}

	g.SetSolutionPath(path)
	return path, nil
}

// step returns the cell one move from c in direction d, or nil at the border.
func step(g *maze.Grid, c *maze.Cell, d maze.Direction) *maze.Cell {
	dx, dy := d.Delta()
	return g.CellAt(c.X+dx, c.Y+dy)
}

// turnRight rotates a facing 90° clockwise.
func turnRight(d maze.Direction) maze.Direction {
	switch d {
	case maze.North:
		return maze.East
	case maze.East:
		return maze.South
	case maze.South:
		return maze.West
	default: // West
		return maze.North
	}
}

// turnLeft rotates a facing 90° counterclockwise.
func turnLeft(d maze.Direction) maze.Direction {
	switch d {
	case maze.North:
		return maze.West
	case maze.West:
		return maze.South
	case maze.South:
		return maze.East
	default: // East
		return maze.North
	}
}
