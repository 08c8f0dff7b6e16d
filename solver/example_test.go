package solver_test

import (
	"fmt"
	"strings"

	"github.com/refactornator/procedural-maze-generator/generator"
	"github.com/refactornator/procedural-maze-generator/maze"
	"github.com/refactornator/procedural-maze-generator/solver"
)

// ExampleNew generates a maze, solves it through the registry, and checks the
// route endpoints. Route cells are printed by the renderers, not here — the
// exact corridor depends on the seed.
func ExampleNew() {
	g, _ := maze.New(10, 10)
	gen := generator.NewKruskal(generator.WithSeed(7))
	if err := gen.Generate(g); err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	g.SetStart(0, 0)
	g.SetEnd(9, 9)

	s, err := solver.New(solver.AlgorithmAStar)
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	path, err := s.Solve(g)
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	fmt.Println("solved:", len(path) > 0)
	fmt.Println("starts at start:", path[0].Equal(g.Start()))
	fmt.Println("ends at end:", path[len(path)-1].Equal(g.End()))
	fmt.Println("stored on grid:", len(g.SolutionPath()) == len(path))
	// Output:
	// solved: true
	// starts at start: true
	// ends at end: true
	// stored on grid: true
}

// ExampleWallFollower traces the right-hand rule through a hand-carved 3x2
// maze with one dead end south of the corridor. The follower detours into it
// and walks back out, so cell (1,0) appears twice.
func ExampleWallFollower() {
	g, _ := maze.New(3, 2)
	g.RemoveWallBetween(g.CellAt(0, 0), g.CellAt(1, 0))
	g.RemoveWallBetween(g.CellAt(1, 0), g.CellAt(2, 0))
	g.RemoveWallBetween(g.CellAt(1, 0), g.CellAt(1, 1))
	g.RemoveWallBetween(g.CellAt(0, 0), g.CellAt(0, 1))
	g.RemoveWallBetween(g.CellAt(2, 0), g.CellAt(2, 1))
	g.SetStart(0, 0)
	g.SetEnd(2, 0)

	path, _ := solver.NewWallFollower().Solve(g)
	for _, c := range path {
		fmt.Println(c)
	}
	// Output:
	// Cell(0, 0)
	// Cell(1, 0)
	// Cell(1, 1)
	// Cell(1, 0)
	// Cell(2, 0)
}

// ExampleNames lists every registered algorithm.
func ExampleNames() {
	fmt.Println(strings.Join(solver.Names(), ", "))
	// Output:
	// astar, dijkstra, bfs, dfs, wall-follower
}
