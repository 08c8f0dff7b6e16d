// Package maze - core types, sentinel errors, and the Direction enum.
package maze

import "errors"

// Sentinel errors for grid construction and structural validation.
var (
	// ErrInvalidDimensions indicates a Grid was requested with width or height < 1.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1")

	// ErrNilGrid indicates a nil *Grid was passed to a validation helper.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrAsymmetricWalls indicates two adjacent cells disagree about the wall between them.
	ErrAsymmetricWalls = errors.New("maze: wall state is not symmetric between adjacent cells")

	// ErrDisconnected indicates at least one cell is unreachable through the carved passages.
	ErrDisconnected = errors.New("maze: not every cell is reachable")

	// ErrNotPerfect indicates the passage graph contains cycles (removed walls exceed W*H-1).
	ErrNotPerfect = errors.New("maze: passage graph is not a spanning tree")

	// ErrEmptySolution indicates a solution path with no cells was offered for validation.
	ErrEmptySolution = errors.New("maze: solution path is empty")

	// ErrSolutionEndpoints indicates a solution path that does not run from start to end.
	ErrSolutionEndpoints = errors.New("maze: solution path endpoints do not match start/end")

	// ErrSolutionBroken indicates two consecutive path cells that are not adjacent
	// or are still separated by a wall.
	ErrSolutionBroken = errors.New("maze: solution path crosses a wall or skips cells")
)

// DistanceUnset is the sentinel value of a Cell's distance before any solver
// has assigned a tentative cost to it.
const DistanceUnset = -1

// Direction is one of the four cardinal moves on the grid.
// The zero value is North.
type Direction uint8

const (
	// North moves toward smaller y (the grid's y axis grows downward).
	North Direction = iota
	// South moves toward larger y.
	South
	// East moves toward larger x.
	East
	// West moves toward smaller x.
	West
)

// Directions lists all four directions in the canonical iteration order
// North, South, East, West. Every neighbor walk in this module follows it,
// which keeps traversal order deterministic for a fixed PRNG stream.
var Directions = [4]Direction{North, South, East, West}

// Delta returns the (dx, dy) offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}

	return 0, 0
}

// Opposite returns the direction pointing the other way:
// North↔South, East↔West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}

	return d
}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}

	return "Unknown"
}

// bit maps a direction to its wall bit inside Cell's wall set.
func (d Direction) bit() uint8 { return 1 << d }

// allWalls is the wall set of a freshly constructed cell: all four present.
const allWalls = uint8(1<<North | 1<<South | 1<<East | 1<<West)
