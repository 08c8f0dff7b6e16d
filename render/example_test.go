package render_test

import (
	"fmt"

	"github.com/refactornator/procedural-maze-generator/maze"
	"github.com/refactornator/procedural-maze-generator/render"
	"github.com/refactornator/procedural-maze-generator/solver"
)

// ExampleASCIIRenderer_Render draws a hand-carved two-by-two maze with the
// route overlay. The dead end east of the start stays blank.
func ExampleASCIIRenderer_Render() {
	g, _ := maze.New(2, 2)
	g.RemoveWallBetween(g.CellAt(0, 0), g.CellAt(1, 0))
	g.RemoveWallBetween(g.CellAt(0, 0), g.CellAt(0, 1))
	g.RemoveWallBetween(g.CellAt(0, 1), g.CellAt(1, 1))
	g.SetStart(0, 0)
	g.SetEnd(1, 1)

	if _, err := solver.NewBFS().Solve(g); err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	r := render.NewASCIIRenderer(render.WithSolutionShown(true))
	out, _ := r.Render(g)
	fmt.Println(out)

	// Output:
	// █████
	// █S  █
	// █·███
	// █··E█
	// █████
}

// ExampleASCIIRenderer_RenderWithBorder frames the block rendition and
// centers a caption above it.
func ExampleASCIIRenderer_RenderWithBorder() {
	g, _ := maze.New(2, 1)
	g.RemoveWallBetween(g.CellAt(0, 0), g.CellAt(1, 0))
	g.SetStart(0, 0)
	g.SetEnd(1, 0)

	out, _ := render.NewASCIIRenderer().RenderWithBorder(g, "Hall")
	fmt.Println(out)

	// Output:
	// ┌───────┐
	// │ Hall  │
	// ├───────┤
	// │ █████ │
	// │ █S E█ │
	// │ █████ │
	// └───────┘
}

// ExampleImageExporter_Image reports the raster geometry: 20px cells plus a
// 2px frame on each side.
func ExampleImageExporter_Image() {
	g, _ := maze.New(3, 2)

	img, err := render.NewImageExporter().Image(g)
	if err != nil {
		fmt.Println("raster failed:", err)

		return
	}

	b := img.Bounds()
	fmt.Println(b.Dx(), "x", b.Dy())

	// Output:
	// 64 x 44
}
