package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/refactornator/procedural-maze-generator/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Small cells keep the pixel math readable: a 10px cell with 2px walls puts
// the cell interior at [2,8) on both axes.
func smallExporter(opts ...render.ImageOption) *render.ImageExporter {
	base := []render.ImageOption{
		render.WithCellSize(10),
		render.WithWallWidth(2),
		render.WithBorder(false),
	}
	return render.NewImageExporter(append(base, opts...)...)
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

func TestImage_Dimensions(t *testing.T) {
	g := carved2x2(t)

	tests := []struct {
		name string
		e    *render.ImageExporter
		want image.Rectangle
	}{
		{"bare", smallExporter(), image.Rect(0, 0, 20, 20)},
		{"framed", smallExporter(render.WithBorder(true)), image.Rect(0, 0, 24, 24)},
		{"framed+title", smallExporter(render.WithBorder(true), render.WithTitle("Hi")), image.Rect(0, 0, 24, 54)},
		{"defaults", render.NewImageExporter(), image.Rect(0, 0, 44, 44)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := tc.e.Image(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, img.Bounds())
		})
	}
}

//----------------------------------------------------------------------------//
// Fill and Wall Tests
//----------------------------------------------------------------------------//

// TestImage_CellFills probes known pixels of the hand-carved fixture: start
// and end fills, plain corridors, wall bands, and open passages.
func TestImage_CellFills(t *testing.T) {
	img, err := smallExporter().Image(carved2x2(t))
	require.NoError(t, err)

	pal := render.DefaultPalette()

	// Cell interiors.
	assert.Equal(t, pal.Start, rgbaAt(img, 5, 5), "start cell center")
	assert.Equal(t, pal.End, rgbaAt(img, 15, 15), "end cell center")
	assert.Equal(t, pal.Path, rgbaAt(img, 15, 5), "dead-end cell center")
	assert.Equal(t, pal.Path, rgbaAt(img, 5, 15), "route cell center")

	// The north wall of the start cell is a 2px band; the fill resumes below.
	assert.Equal(t, pal.Wall, rgbaAt(img, 5, 0))
	assert.Equal(t, pal.Wall, rgbaAt(img, 5, 1))
	assert.Equal(t, pal.Start, rgbaAt(img, 5, 2))

	// Open passage east of the start: no band on either side of x=10.
	assert.Equal(t, pal.Start, rgbaAt(img, 9, 5))
	assert.Equal(t, pal.Path, rgbaAt(img, 10, 5))

	// Open passage south of the start.
	assert.Equal(t, pal.Path, rgbaAt(img, 5, 10))

	// Intact wall between (1,0) and (1,1): both cells stroke their side.
	assert.Equal(t, pal.Path, rgbaAt(img, 15, 7))
	assert.Equal(t, pal.Wall, rgbaAt(img, 15, 8))
	assert.Equal(t, pal.Wall, rgbaAt(img, 15, 11))
	assert.Equal(t, pal.End, rgbaAt(img, 15, 12))
}

// TestImage_Frame checks the gray outline and the shifted maze band.
func TestImage_Frame(t *testing.T) {
	img, err := smallExporter(render.WithBorder(true)).Image(carved2x2(t))
	require.NoError(t, err)

	pal := render.DefaultPalette()
	assert.Equal(t, pal.Border, rgbaAt(img, 0, 0))
	assert.Equal(t, pal.Border, rgbaAt(img, 23, 23))
	assert.Equal(t, pal.Border, rgbaAt(img, 12, 0))
	assert.Equal(t, pal.Border, rgbaAt(img, 0, 12))

	// Cells shift inward by the frame width.
	assert.Equal(t, pal.Start, rgbaAt(img, 7, 7))
}

// TestImage_TitleBand: the band sits above the maze, frame and cells shift
// down by its height.
func TestImage_TitleBand(t *testing.T) {
	img, err := smallExporter(render.WithBorder(true), render.WithTitle("Hi")).Image(carved2x2(t))
	require.NoError(t, err)

	pal := render.DefaultPalette()
	assert.Equal(t, pal.Background, rgbaAt(img, 0, 0), "band corner stays background")
	assert.Equal(t, pal.Border, rgbaAt(img, 0, 30), "frame starts below the band")
	assert.Equal(t, pal.Border, rgbaAt(img, 23, 53))
	assert.Equal(t, pal.Start, rgbaAt(img, 7, 37))
}

// TestImage_SolutionOverlay: the route stroke runs between cell centers and
// dots cover the centers themselves.
func TestImage_SolutionOverlay(t *testing.T) {
	g := solved2x2(t)
	img, err := smallExporter(render.WithShowSolution(true)).Image(g)
	require.NoError(t, err)

	pal := render.DefaultPalette()

	// Vertical segment between (0,0) and (0,1) centers: x in [3,6].
	assert.Equal(t, pal.Solution, rgbaAt(img, 5, 10))
	assert.Equal(t, pal.Solution, rgbaAt(img, 4, 10))
	assert.Equal(t, pal.Path, rgbaAt(img, 7, 10), "outside the stroke band")

	// Horizontal segment between (0,1) and (1,1) centers.
	assert.Equal(t, pal.Solution, rgbaAt(img, 10, 15))

	// Dots overpaint the cell fill at route centers.
	assert.Equal(t, pal.Solution, rgbaAt(img, 5, 5))
	assert.Equal(t, pal.Solution, rgbaAt(img, 15, 15))

	// Start fill survives away from stroke and dot.
	assert.Equal(t, pal.Start, rgbaAt(img, 2, 2))
}

// TestImage_SolutionRequiresOptIn: a stored route alone draws nothing.
func TestImage_SolutionRequiresOptIn(t *testing.T) {
	img, err := smallExporter().Image(solved2x2(t))
	require.NoError(t, err)
	assert.Equal(t, render.DefaultPalette().Path, rgbaAt(img, 5, 10))
}

// TestImage_VisitedFill: generation scratch flags show up only on request,
// and never over the start or end fill.
func TestImage_VisitedFill(t *testing.T) {
	g := carved2x2(t)
	g.CellAt(1, 0).SetVisited(true)
	g.CellAt(0, 0).SetVisited(true)

	pal := render.DefaultPalette()

	img, err := smallExporter(render.WithShowVisited(true)).Image(g)
	require.NoError(t, err)
	assert.Equal(t, pal.Visited, rgbaAt(img, 15, 5))
	assert.Equal(t, pal.Start, rgbaAt(img, 5, 5), "start fill wins over visited")

	img, err = smallExporter().Image(g)
	require.NoError(t, err)
	assert.Equal(t, pal.Path, rgbaAt(img, 15, 5), "visited hidden without opt-in")
}

// TestImage_CustomPalette: every probe follows the palette swap.
func TestImage_CustomPalette(t *testing.T) {
	pal := render.DefaultPalette()
	pal.Start = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	pal.Wall = color.RGBA{R: 9, A: 255}

	img, err := smallExporter(render.WithPalette(pal)).Image(carved2x2(t))
	require.NoError(t, err)
	assert.Equal(t, pal.Start, rgbaAt(img, 5, 5))
	assert.Equal(t, pal.Wall, rgbaAt(img, 5, 0))
}

//----------------------------------------------------------------------------//
// Encoding and Export Tests
//----------------------------------------------------------------------------//

func TestEncodePNG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, smallExporter().EncodePNG(&buf, carved2x2(t)))

	decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), decoded.Bounds())
}

func TestEncodeJPEG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, smallExporter().EncodeJPEG(&buf, carved2x2(t)))

	decoded, err := jpeg.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), decoded.Bounds())
}

func TestExport_ByExtension(t *testing.T) {
	g := carved2x2(t)
	e := smallExporter()
	dir := t.TempDir()

	for _, name := range []string{"m.png", "m.jpg", "m.jpeg", "m.svg", "m.PNG"} {
		path := filepath.Join(dir, name)
		require.NoError(t, e.Export(g, path), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}
}

func TestExport_UnsupportedExtension(t *testing.T) {
	e := smallExporter()
	dir := t.TempDir()

	for _, name := range []string{"m.gif", "m.bmp", "m"} {
		path := filepath.Join(dir, name)
		err := e.Export(carved2x2(t), path)
		assert.True(t, errors.Is(err, render.ErrUnsupportedFormat), "%s: %v", name, err)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s must not be created", name)
	}
}

func TestImage_NilGrid(t *testing.T) {
	e := smallExporter()

	_, err := e.Image(nil)
	assert.True(t, errors.Is(err, render.ErrNilGrid))
	assert.True(t, errors.Is(e.EncodePNG(&bytes.Buffer{}, nil), render.ErrNilGrid))
	assert.True(t, errors.Is(e.EncodeJPEG(&bytes.Buffer{}, nil), render.ErrNilGrid))
	assert.True(t, errors.Is(e.EncodeSVG(&bytes.Buffer{}, nil), render.ErrNilGrid))
	assert.True(t, errors.Is(e.Export(nil, "x.png"), render.ErrNilGrid))
}
