// Package mazegen is a toolkit for generating, solving, and rendering
// rectangular grid mazes, from spanning-tree carving algorithms to
// shortest-path searches and terminal/image output.
//
// What is procedural-maze-generator?
//
//	A small, focused library of maze algorithms over a shared grid model:
//		• Core model: Direction, Cell (walls + solve scratch), Grid (maze)
//		• Generators: DFS backtracking, randomized Prim, randomized Kruskal
//		  (union-find), Wilson (loop-erased random walk, unbiased)
//		• Solvers: BFS, DFS, Dijkstra, A* (Manhattan), wall-follower
//		• Rendering: ASCII (block & compact), PNG/JPEG raster, SVG vector
//		• Config: YAML/JSON files with MAZE_* environment overrides
//
// Every generator accepts an optional seed and builds its PRNG per
// invocation, so the same seed always reproduces the same maze and
// independent callers never share a random stream. Every generated maze
// is a perfect maze: a spanning tree over all W×H cells, exactly
// W×H−1 walls removed, every cell reachable, no cycles.
//
// Packages:
//
//	maze/      — Direction, Cell, Grid and structural validation
//	generator/ — the four carving algorithms behind one Generator interface
//	solver/    — the five search algorithms behind one Solver interface
//	render/    — ASCII, raster, and SVG renderers reading Grid state
//	config/    — defaults, file loading, environment overrides
//	output/    — managed output directory tree and safe filenames
//	cmd/mazegen — the command-line front end
//
// Quick sketch:
//
//	g, _ := maze.New(10, 10)
//	g.SetStart(0, 0)
//	g.SetEnd(9, 9)
//	_ = generator.NewDFS(generator.WithSeed(42)).Generate(g)
//	path, _ := solver.NewAStar().Solve(g)
//	art, _ := render.NewASCIIRenderer(render.WithSolutionShown(true)).Render(g)
//	fmt.Println(art)
//	fmt.Println(len(path), "cells")
//
//	go get github.com/refactornator/procedural-maze-generator
package mazegen
