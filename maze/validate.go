// Package maze - structural validation of generated mazes and solution paths.
package maze

import "fmt"

// Validate checks that g is a structurally sound perfect maze:
//
//  1. Wall symmetry — every adjacent pair agrees about the wall between them.
//  2. Connectivity — a passage walk from (0,0) reaches all Width×Height cells.
//  3. Spanning tree — exactly Width×Height−1 walls have been removed, so the
//     passage graph carries no cycles.
//
// A freshly constructed 1×1 grid passes trivially; any larger grid must have
// been generated first. Returns nil on success, otherwise one of
// ErrNilGrid, ErrAsymmetricWalls, ErrDisconnected, or ErrNotPerfect wrapped
// with the offending location.
//
// Complexity: O(W×H) time and memory.
func Validate(g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	if err := checkSymmetry(g); err != nil {
		return err
	}
	if err := checkConnectivity(g); err != nil {
		return err
	}

	if removed, want := g.RemovedWalls(), g.width*g.height-1; removed != want {
		return fmt.Errorf("%w: %d walls removed, want %d", ErrNotPerfect, removed, want)
	}

	return nil
}

// checkSymmetry verifies the shared-wall agreement for every internal pair.
// Checking each cell's East and South sides visits every pair exactly once.
func checkSymmetry(g *Grid) error {
	for _, c := range g.Cells() {
		if e := g.CellAt(c.X+1, c.Y); e != nil && c.HasWall(East) != e.HasWall(West) {
			return fmt.Errorf("%w: between %s and %s", ErrAsymmetricWalls, c, e)
		}
		if s := g.CellAt(c.X, c.Y+1); s != nil && c.HasWall(South) != s.HasWall(North) {
			return fmt.Errorf("%w: between %s and %s", ErrAsymmetricWalls, c, s)
		}
	}

	return nil
}

// checkConnectivity walks the passage graph breadth-first from (0,0) and
// requires every cell to be reached.
func checkConnectivity(g *Grid) error {
	total := g.width * g.height
	seen := make(map[*Cell]bool, total)

	queue := []*Cell{g.cells[0][0]}
	seen[queue[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if cur.HasWall(d) {
				continue
			}
			dx, dy := d.Delta()
			next := g.CellAt(cur.X+dx, cur.Y+dy)
			if next != nil && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	if len(seen) != total {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, len(seen), total)
	}

	return nil
}

// ValidateSolution checks that path is a legal walk from g's start to g's
// end: non-empty, endpoint-anchored, and stepping only through carved
// passages between adjacent cells. Cells may repeat (the wall follower
// backtracks through corridors), so the path need not be simple.
//
// Returns nil on success, otherwise ErrNilGrid, ErrEmptySolution,
// ErrSolutionEndpoints, or ErrSolutionBroken wrapped with the offending step.
func ValidateSolution(g *Grid, path []*Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(path) == 0 {
		return ErrEmptySolution
	}

	if g.start == nil || !path[0].Equal(g.start) {
		return fmt.Errorf("%w: path begins at %s", ErrSolutionEndpoints, path[0])
	}
	if g.end == nil || !path[len(path)-1].Equal(g.end) {
		return fmt.Errorf("%w: path ends at %s", ErrSolutionEndpoints, path[len(path)-1])
	}

	for i := 0; i+1 < len(path); i++ {
		d, ok := directionBetween(path[i], path[i+1])
		if !ok {
			return fmt.Errorf("%w: %s to %s is not one step", ErrSolutionBroken, path[i], path[i+1])
		}
		if path[i].HasWall(d) {
			return fmt.Errorf("%w: wall between %s and %s", ErrSolutionBroken, path[i], path[i+1])
		}
	}

	return nil
}
