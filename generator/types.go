// Package generator - Generator contract, shared options, and the name registry.
package generator

import (
	"errors"
	"fmt"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// ErrNilGrid indicates that Generate received a nil *maze.Grid.
var ErrNilGrid = errors.New("generator: nil grid")

// ErrUnknownAlgorithm indicates that New was asked for a name outside Names().
var ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

// Registered algorithm names, accepted by New.
const (
	// AlgorithmDFS selects the depth-first backtracker.
	AlgorithmDFS = "dfs"

	// AlgorithmKruskal selects Kruskal's algorithm over a shuffled wall list.
	AlgorithmKruskal = "kruskal"

	// AlgorithmPrim selects the randomized-frontier variant of Prim's algorithm.
	AlgorithmPrim = "prim"

	// AlgorithmWilson selects Wilson's loop-erased random walk.
	AlgorithmWilson = "wilson"
)

// aliasDepthFirst is accepted by New as a spelled-out synonym for
// AlgorithmDFS. Aliases resolve but are not listed by Names().
const aliasDepthFirst = "depth-first"

// Generator carves a spanning tree of passages into a grid.
//
// Implementations reset the grid first (all walls up, all visited flags
// cleared), so one Generator may be reused across grids and invocations.
type Generator interface {
	// Generate carves passages into g until every cell is reachable from
	// every other by exactly one route. Returns ErrNilGrid when g is nil.
	Generate(g *maze.Grid) error
}

// Options holds the configuration shared by all generators.
// Use DefaultOptions() plus the With* helpers; the zero value is the
// unseeded default.
type Options struct {
	// seed is honored only when seeded is true; this keeps 0 a usable seed
	// distinct from "no seed given".
	seed   int64
	seeded bool
}

// Option mutates Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSeed pins the pseudo-random stream: the same seed, algorithm and grid
// dimensions reproduce the same maze. Any int64 is a valid seed, zero included.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// DefaultOptions returns the baseline configuration: unseeded, meaning every
// Generate call draws a fresh stream from the wall clock.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{}
}

// applyOptions folds opts over DefaultOptions.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// New builds the Generator registered under name, configured with opts.
// Accepted names: AlgorithmDFS, AlgorithmKruskal, AlgorithmPrim,
// AlgorithmWilson, plus the alias "depth-first" for AlgorithmDFS.
// Any other name yields ErrUnknownAlgorithm.
func New(name string, opts ...Option) (Generator, error) {
	switch name {
	case AlgorithmDFS, aliasDepthFirst:
		return NewDFS(opts...), nil
	case AlgorithmKruskal:
		return NewKruskal(opts...), nil
	case AlgorithmPrim:
		return NewPrim(opts...), nil
	case AlgorithmWilson:
		return NewWilson(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists the registered algorithm names in stable order.
// The slice is fresh on every call; callers may mutate it.
func Names() []string {
	return []string{AlgorithmDFS, AlgorithmKruskal, AlgorithmPrim, AlgorithmWilson}
}

// resetForGenerate returns g to the blank slate every algorithm starts from:
// every wall intact, every visited flag cleared. Start/end markers survive.
func resetForGenerate(g *maze.Grid) {
	g.ResetVisited()
	g.ResetWalls()
}
