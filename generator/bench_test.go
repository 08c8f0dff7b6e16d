package generator_test

import (
	"fmt"
	"testing"

	"github.com/refactornator/procedural-maze-generator/generator"
	"github.com/refactornator/procedural-maze-generator/maze"
)

// BenchmarkGenerate compares all four algorithms on one mid-sized grid.
// Generate resets the grid itself, so the same grid is carved repeatedly.
func BenchmarkGenerate(b *testing.B) {
	const width, height = 50, 50

	for _, name := range generator.Names() {
		gen, err := generator.New(name, generator.WithSeed(1))
		if err != nil {
			b.Fatalf("New(%q): %v", name, err)
		}
		b.Run(name, func(b *testing.B) {
			g, err := maze.New(width, height)
			if err != nil {
				b.Fatalf("New grid: %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := gen.Generate(g); err != nil {
					b.Fatalf("Generate: %v", err)
				}
			}
		})
	}
}

// BenchmarkGenerate_DFSSizes tracks how the backtracker scales with area.
func BenchmarkGenerate_DFSSizes(b *testing.B) {
	gen := generator.NewDFS(generator.WithSeed(1))

	for _, side := range []int{10, 25, 50, 100} {
		b.Run(fmt.Sprintf("%dx%d", side, side), func(b *testing.B) {
			g, err := maze.New(side, side)
			if err != nil {
				b.Fatalf("New grid: %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := gen.Generate(g); err != nil {
					b.Fatalf("Generate: %v", err)
				}
			}
		})
	}
}
