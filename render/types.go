// Package render - sentinel errors and the shared color palette.
package render

import (
	"errors"
	"image/color"
)

// ErrNilGrid indicates that a renderer received a nil *maze.Grid.
var ErrNilGrid = errors.New("render: nil grid")

// ErrUnsupportedFormat indicates that Export was handed a filename whose
// extension maps to no encoder.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

// Palette assigns a color to every paintable maze feature. The zero value is
// unusable; start from DefaultPalette and override fields as needed.
type Palette struct {
	// Background fills the whole canvas, title band included.
	Background color.RGBA

	// Wall strokes the cell walls.
	Wall color.RGBA

	// Path fills ordinary corridor cells.
	Path color.RGBA

	// Start fills the start cell.
	Start color.RGBA

	// End fills the end cell.
	End color.RGBA

	// Solution strokes the route overlay between cell centers.
	Solution color.RGBA

	// Visited fills cells whose visited flag is set, when requested.
	Visited color.RGBA

	// Border strokes the outer frame of raster images.
	Border color.RGBA
}

// DefaultPalette returns the classic look: white corridors, black walls,
// green start, red end, blue route, yellow visited marks, gray frame.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Wall:       color.RGBA{A: 255},
		Path:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Start:      color.RGBA{G: 255, A: 255},
		End:        color.RGBA{R: 255, A: 255},
		Solution:   color.RGBA{B: 255, A: 255},
		Visited:    color.RGBA{R: 255, G: 255, A: 255},
		Border:     color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}
