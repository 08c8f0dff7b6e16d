package solver_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/refactornator/procedural-maze-generator/generator"
	"github.com/refactornator/procedural-maze-generator/maze"
	"github.com/refactornator/procedural-maze-generator/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a grid or stops the test.
func mustGrid(t *testing.T, w, h int) *maze.Grid {
	t.Helper()
	g, err := maze.New(w, h)
	require.NoError(t, err)
	return g
}

// carvedMaze generates a seeded perfect maze with start and end pinned to
// opposite corners.
func carvedMaze(t *testing.T, w, h int, seed int64) *maze.Grid {
	t.Helper()
	g := mustGrid(t, w, h)
	gen := generator.NewDFS(generator.WithSeed(seed))
	require.NoError(t, gen.Generate(g))
	require.True(t, g.SetStart(0, 0))
	require.True(t, g.SetEnd(w-1, h-1))
	return g
}

// carve opens the wall between two coordinate pairs or stops the test.
func carve(t *testing.T, g *maze.Grid, x1, y1, x2, y2 int) {
	t.Helper()
	require.True(t, g.RemoveWallBetween(g.CellAt(x1, y1), g.CellAt(x2, y2)),
		"carve (%d,%d)-(%d,%d)", x1, y1, x2, y2)
}

//----------------------------------------------------------------------------//
// Registry Tests
//----------------------------------------------------------------------------//

// TestNew_Registry checks that every published name and alias builds its solver.
func TestNew_Registry(t *testing.T) {
	cases := []struct {
		name string
		want interface{}
	}{
		{solver.AlgorithmAStar, (*solver.AStar)(nil)},
		{solver.AlgorithmDijkstra, (*solver.Dijkstra)(nil)},
		{solver.AlgorithmBFS, (*solver.BFS)(nil)},
		{solver.AlgorithmDFS, (*solver.DFS)(nil)},
		{solver.AlgorithmWallFollower, (*solver.WallFollower)(nil)},
		{"a-star", (*solver.AStar)(nil)},
		{"breadth-first", (*solver.BFS)(nil)},
		{"depth-first", (*solver.DFS)(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := solver.New(tc.name)
			require.NoError(t, err)
			assert.IsType(t, tc.want, s)
		})
	}
}

// TestNew_UnknownAlgorithm verifies the sentinel and that the offending name
// is carried in the message.
func TestNew_UnknownAlgorithm(t *testing.T) {
	for _, name := range []string{"", "bellman-ford", "BFS", "wallfollower"} {
		s, err := solver.New(name)
		if !errors.Is(err, solver.ErrUnknownAlgorithm) {
			t.Errorf("New(%q) error = %v; want ErrUnknownAlgorithm", name, err)
		}
		assert.Nil(t, s, "New(%q) solver", name)
		assert.Contains(t, err.Error(), name)
	}
}

// TestNames pins the published registry contents and order.
func TestNames(t *testing.T) {
	want := []string{"astar", "dijkstra", "bfs", "dfs", "wall-follower"}
	assert.Equal(t, want, solver.Names())
}

//----------------------------------------------------------------------------//
// Contract Tests
//----------------------------------------------------------------------------//

// TestSolve_NilGrid verifies every algorithm rejects a nil grid with the
// shared sentinel.
func TestSolve_NilGrid(t *testing.T) {
	for _, name := range solver.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := solver.New(name)
			require.NoError(t, err)
			path, err := s.Solve(nil)
			if !errors.Is(err, solver.ErrNilGrid) {
				t.Errorf("Solve(nil) error = %v; want ErrNilGrid", err)
			}
			assert.Nil(t, path)
		})
	}
}

// TestSolve_UnsetEndpoints verifies the quiet no-route outcome when start,
// end, or both are missing. No error, no stored solution.
func TestSolve_UnsetEndpoints(t *testing.T) {
	variants := []struct {
		name  string
		setup func(g *maze.Grid)
	}{
		{"Neither", func(*maze.Grid) {}},
		{"StartOnly", func(g *maze.Grid) { g.SetStart(0, 0) }},
		{"EndOnly", func(g *maze.Grid) { g.SetEnd(3, 3) }},
	}
	for _, name := range solver.Names() {
		s, err := solver.New(name)
		require.NoError(t, err)

		for _, v := range variants {
			t.Run(name+"/"+v.name, func(t *testing.T) {
				g := mustGrid(t, 4, 4)
				require.NoError(t, generator.NewPrim(generator.WithSeed(5)).Generate(g))
				v.setup(g)

				path, err := s.Solve(g)
				assert.NoError(t, err)
				assert.Empty(t, path)
				assert.Nil(t, g.SolutionPath())
			})
		}
	}
}

// TestSolve_UniqueRoute relies on the defining property of a perfect maze:
// exactly one simple route joins any two cells. The four parent-tracking
// solvers must therefore return identical cell sequences.
func TestSolve_UniqueRoute(t *testing.T) {
	seeds := []int64{1, 42, 1234}
	for _, seed := range seeds {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := carvedMaze(t, 9, 7, seed)

			reference, err := solver.NewBFS().Solve(g)
			require.NoError(t, err)
			require.NotEmpty(t, reference)

			for _, name := range []string{"dfs", "dijkstra", "astar"} {
				s, err := solver.New(name)
				require.NoError(t, err)
				path, err := s.Solve(g)
				require.NoError(t, err)
				require.Len(t, path, len(reference), "%s route length", name)
				for i := range path {
					assert.True(t, path[i].Equal(reference[i]),
						"%s diverges at step %d: %v vs %v", name, i, path[i], reference[i])
				}
			}
		})
	}
}

// TestSolve_AllAlgorithmsAllGenerators crosses every solver with every
// generator and checks the returned route is structurally valid, registered
// on the grid, and at least as long as the optimum.
func TestSolve_AllAlgorithmsAllGenerators(t *testing.T) {
	for _, genName := range generator.Names() {
		gen, err := generator.New(genName, generator.WithSeed(99))
		require.NoError(t, err)

		g := mustGrid(t, 8, 6)
		require.NoError(t, gen.Generate(g))
		require.True(t, g.SetStart(0, 0))
		require.True(t, g.SetEnd(7, 5))

		optimum, err := solver.NewBFS().Solve(g)
		require.NoError(t, err)
		require.NotEmpty(t, optimum)

		for _, solName := range solver.Names() {
			t.Run(genName+"/"+solName, func(t *testing.T) {
				s, err := solver.New(solName)
				require.NoError(t, err)

				path, err := s.Solve(g)
				require.NoError(t, err)
				require.NotEmpty(t, path, "every perfect maze is solvable")

				assert.NoError(t, maze.ValidateSolution(g, path))
				assert.True(t, path[0].Equal(g.Start()), "route starts at start")
				assert.True(t, path[len(path)-1].Equal(g.End()), "route ends at end")
				assert.GreaterOrEqual(t, len(path), len(optimum), "optimum is a lower bound")
				assert.Equal(t, path, g.SolutionPath(), "route stored on the grid")
			})
		}
	}
}

// TestSolve_ManhattanLowerBound pins the corner-to-corner case: on a 5x5 grid
// the route can never be shorter than the 9 cells the Manhattan distance
// dictates, and the informed searches agree with BFS exactly.
func TestSolve_ManhattanLowerBound(t *testing.T) {
	g := carvedMaze(t, 5, 5, 42)

	bfsPath, err := solver.NewBFS().Solve(g)
	require.NoError(t, err)
	astarPath, err := solver.NewAStar().Solve(g)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(astarPath), 9, "Manhattan floor on a 5x5 corner run")
	assert.Equal(t, len(bfsPath), len(astarPath), "A* must match the BFS optimum")
}

// TestSolve_StartEqualsEnd covers the degenerate route: both markers on one
// cell yield the single-cell path.
func TestSolve_StartEqualsEnd(t *testing.T) {
	for _, name := range solver.Names() {
		t.Run(name, func(t *testing.T) {
			g := carvedMaze(t, 4, 4, 8)
			require.True(t, g.SetStart(1, 2))
			require.True(t, g.SetEnd(1, 2))

			s, err := solver.New(name)
			require.NoError(t, err)
			path, err := s.Solve(g)
			require.NoError(t, err)

			require.Len(t, path, 1)
			assert.True(t, path[0].Equal(g.CellAt(1, 2)))
			assert.NoError(t, maze.ValidateSolution(g, path))
		})
	}
}

// TestSolve_SingleCellGrid is the same degenerate route on the smallest grid.
func TestSolve_SingleCellGrid(t *testing.T) {
	for _, name := range solver.Names() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, 1, 1)
			require.True(t, g.SetStart(0, 0))
			require.True(t, g.SetEnd(0, 0))

			s, err := solver.New(name)
			require.NoError(t, err)
			path, err := s.Solve(g)
			require.NoError(t, err)
			assert.Len(t, path, 1)
		})
	}
}

// TestSolve_UnreachableEnd puts the end cell behind intact walls. Every
// solver must report the quiet no-route outcome; the wall follower gets there
// through its pose-loop detection.
func TestSolve_UnreachableEnd(t *testing.T) {
	for _, name := range solver.Names() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, 2, 2)
			carve(t, g, 0, 0, 1, 0) // the only passage; (0,1) and (1,1) stay sealed
			require.True(t, g.SetStart(0, 0))
			require.True(t, g.SetEnd(0, 1))

			s, err := solver.New(name)
			require.NoError(t, err)
			path, err := s.Solve(g)
			assert.NoError(t, err)
			assert.Empty(t, path)
			assert.Nil(t, g.SolutionPath())
		})
	}
}

//----------------------------------------------------------------------------//
// Bookkeeping Tests
//----------------------------------------------------------------------------//

// TestSolve_DistanceBookkeeping pins which algorithms leave distances behind.
// BFS and Dijkstra finalize ring distances along the route; A* leaves
// g-scores; DFS and the wall follower record none.
func TestSolve_DistanceBookkeeping(t *testing.T) {
	t.Run("RingDistancesOnRoute", func(t *testing.T) {
		for _, name := range []string{"bfs", "dijkstra", "astar"} {
			g := carvedMaze(t, 6, 6, 21)
			s, err := solver.New(name)
			require.NoError(t, err)
			path, err := s.Solve(g)
			require.NoError(t, err)
			require.NotEmpty(t, path)

			for i, c := range path {
				assert.Equal(t, i, c.Distance(), "%s: step %d carries its route offset", name, i)
			}
		}
	})

	t.Run("NoDistances", func(t *testing.T) {
		for _, name := range []string{"dfs", "wall-follower"} {
			g := carvedMaze(t, 6, 6, 21)
			s, err := solver.New(name)
			require.NoError(t, err)
			path, err := s.Solve(g)
			require.NoError(t, err)
			require.NotEmpty(t, path)

			for _, c := range g.Cells() {
				assert.Equal(t, maze.DistanceUnset, c.Distance(),
					"%s must not touch distances (cell %v)", name, c)
			}
		}
	})
}

// TestSolve_ResetBetweenRuns runs two solvers back to back on one grid; the
// second run must wipe every trace of the first.
func TestSolve_ResetBetweenRuns(t *testing.T) {
	g := carvedMaze(t, 7, 7, 3)

	first, err := solver.NewBFS().Solve(g)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	require.Equal(t, 0, g.Start().Distance(), "BFS scored the start cell")

	second, err := solver.NewDFS().Solve(g)
	require.NoError(t, err)
	require.NotEmpty(t, second)

	// DFS never writes distances, so any surviving score would be stale BFS state.
	for _, c := range g.Cells() {
		assert.Equal(t, maze.DistanceUnset, c.Distance(), "stale distance on %v", c)
	}
	assert.Equal(t, second, g.SolutionPath())
}

//----------------------------------------------------------------------------//
// Wall Follower Geometry Tests
//----------------------------------------------------------------------------//

// TestWallFollower_DeadEndExcursion hand-carves a 3x2 maze with a dead end
// hanging south of the main corridor, exactly where the right hand trails:
//
//	(0,0)─(1,0)─(2,0)
//	  │     │     │
//	(0,1) (1,1) (2,1)
//
// The follower detours into (1,1), walks back out, and still finishes. The
// revisit of (1,0) is expected and must pass solution validation.
func TestWallFollower_DeadEndExcursion(t *testing.T) {
	g := mustGrid(t, 3, 2)
	carve(t, g, 0, 0, 1, 0)
	carve(t, g, 1, 0, 2, 0)
	carve(t, g, 1, 0, 1, 1)
	carve(t, g, 0, 0, 0, 1)
	carve(t, g, 2, 0, 2, 1)
	require.NoError(t, maze.Validate(g))
	require.True(t, g.SetStart(0, 0))
	require.True(t, g.SetEnd(2, 0))

	path, err := solver.NewWallFollower().Solve(g)
	require.NoError(t, err)

	want := [][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 0}, {2, 0}}
	require.Len(t, path, len(want))
	for i, c := range path {
		assert.Equal(t, want[i][0], c.X, "step %d x", i)
		assert.Equal(t, want[i][1], c.Y, "step %d y", i)
	}
	assert.NoError(t, maze.ValidateSolution(g, path))

	// The direct route is three cells; the excursion costs two extra steps.
	direct, err := solver.NewBFS().Solve(g)
	require.NoError(t, err)
	assert.Len(t, direct, 3)
}
