// Package render - raster export: maze → RGBA image → PNG/JPEG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/refactornator/procedural-maze-generator/maze"
)

const (
	defaultCellSize    = 20
	defaultWallWidth   = 2
	defaultJPEGQuality = 95

	// titleBandHeight is the extra canvas strip above the maze when a title
	// is set; titlePadTop is the gap between canvas top and the text.
	titleBandHeight = 30
	titlePadTop     = 5
)

// ImageOptions configures geometry, overlays, and colors of ImageExporter.
// Use DefaultImageOptions() plus the With* helpers.
type ImageOptions struct {
	// CellSize is the square cell edge in pixels.
	CellSize int

	// WallWidth is the wall stroke thickness in pixels; the route overlay
	// strokes at twice this.
	WallWidth int

	// ShowSolution overlays the grid's stored route when one exists.
	ShowSolution bool

	// ShowVisited fills cells whose visited flag is set with Palette.Visited.
	ShowVisited bool

	// Border frames the maze and grows the canvas by WallWidth on each side.
	Border bool

	// Title, when non-empty, adds a centered caption band above the maze.
	Title string

	// JPEGQuality is the encoder quality for EncodeJPEG, 1..100.
	JPEGQuality int

	// Palette supplies every feature color.
	Palette Palette
}

// ImageOption mutates ImageOptions.
type ImageOption func(*ImageOptions)

// DefaultImageOptions returns the classic look: 20px cells, 2px walls,
// framed, no overlays, JPEG quality 95, DefaultPalette colors.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		CellSize:    defaultCellSize,
		WallWidth:   defaultWallWidth,
		Border:      true,
		JPEGQuality: defaultJPEGQuality,
		Palette:     DefaultPalette(),
	}
}

// WithCellSize overrides the cell edge length in pixels.
func WithCellSize(px int) ImageOption { return func(o *ImageOptions) { o.CellSize = px } }

// WithWallWidth overrides the wall stroke thickness in pixels.
func WithWallWidth(px int) ImageOption { return func(o *ImageOptions) { o.WallWidth = px } }

// WithShowSolution toggles the route overlay.
func WithShowSolution(show bool) ImageOption {
	return func(o *ImageOptions) { o.ShowSolution = show }
}

// WithShowVisited toggles the visited-cell fill.
func WithShowVisited(show bool) ImageOption {
	return func(o *ImageOptions) { o.ShowVisited = show }
}

// WithBorder toggles the outer frame.
func WithBorder(border bool) ImageOption { return func(o *ImageOptions) { o.Border = border } }

// WithTitle sets the caption; the empty string removes the band.
func WithTitle(title string) ImageOption { return func(o *ImageOptions) { o.Title = title } }

// WithJPEGQuality overrides the JPEG encoder quality (1..100).
func WithJPEGQuality(q int) ImageOption { return func(o *ImageOptions) { o.JPEGQuality = q } }

// WithPalette replaces the whole feature palette.
func WithPalette(p Palette) ImageOption { return func(o *ImageOptions) { o.Palette = p } }

// ImageExporter renders mazes to RGBA rasters and encodes them as PNG or
// JPEG; EncodeSVG shares its palette and geometry. One exporter may serve
// many grids.
type ImageExporter struct {
	opts ImageOptions
}

// NewImageExporter returns a raster/vector exporter configured with opts.
func NewImageExporter(opts ...ImageOption) *ImageExporter {
	o := DefaultImageOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &ImageExporter{opts: o}
}

// Image rasterizes the maze. Layer order: background, title, cell fills,
// route overlay, walls, frame. The canvas is W·CellSize × H·CellSize pixels,
// grown by WallWidth on each side when framed and by the title band when
// captioned.
func (e *ImageExporter) Image(g *maze.Grid) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cs, ww := e.opts.CellSize, e.opts.WallWidth

	width := g.Width() * cs
	height := g.Height() * cs
	if e.opts.Border {
		width += 2 * ww
		height += 2 * ww
	}
	titleH := 0
	if e.opts.Title != "" {
		titleH = titleBandHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height+titleH))
	fillRect(img, 0, 0, width, height+titleH, e.opts.Palette.Background)

	if e.opts.Title != "" {
		e.drawTitle(img, width)
	}

	yOff := titleH
	bOff := 0
	if e.opts.Border {
		bOff = ww
	}

	for _, c := range g.Cells() {
		fillRect(img, c.X*cs+bOff, c.Y*cs+yOff+bOff, cs, cs, e.cellColor(c))
	}
	if e.opts.ShowSolution {
		if path := g.SolutionPath(); len(path) >= 2 {
			e.drawSolution(img, path, yOff, bOff)
		}
	}
	for _, c := range g.Cells() {
		e.drawWalls(img, c, yOff, bOff)
	}
	if e.opts.Border {
		e.drawFrame(img, width, height, yOff)
	}
	return img, nil
}

// EncodePNG rasterizes g and writes it PNG-encoded to w.
func (e *ImageExporter) EncodePNG(w io.Writer, g *maze.Grid) error {
	img, err := e.Image(g)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// EncodeJPEG rasterizes g and writes it JPEG-encoded to w at the configured
// quality.
func (e *ImageExporter) EncodeJPEG(w io.Writer, g *maze.Grid) error {
	img, err := e.Image(g)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: e.opts.JPEGQuality}); err != nil {
		return fmt.Errorf("render: encode jpeg: %w", err)
	}
	return nil
}

// Export writes g to filename, picking the encoder from the extension:
// .png, .jpg/.jpeg, or .svg. Unknown extensions yield ErrUnsupportedFormat.
func (e *ImageExporter) Export(g *maze.Grid, filename string) error {
	if g == nil {
		return ErrNilGrid
	}

	var encode func(io.Writer, *maze.Grid) error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		encode = e.EncodePNG
	case ".jpg", ".jpeg":
		encode = e.EncodeJPEG
	case ".svg":
		encode = e.EncodeSVG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", filename, err)
	}
	if err := encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// cellColor picks the fill for a cell: start and end win over the visited
// mark, the visited mark wins over plain corridor.
func (e *ImageExporter) cellColor(c *maze.Cell) color.RGBA {
	switch {
	case c.IsStart():
		return e.opts.Palette.Start
	case c.IsEnd():
		return e.opts.Palette.End
	case e.opts.ShowVisited && c.Visited():
		return e.opts.Palette.Visited
	default:
		return e.opts.Palette.Path
	}
}

// drawTitle centers the caption in the title band.
func (e *ImageExporter) drawTitle(img *image.RGBA, width int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(e.opts.Palette.Wall),
		Face: face,
	}
	textWidth := d.MeasureString(e.opts.Title).Ceil()
	x := (width - textWidth) / 2
	y := titlePadTop + face.Metrics().Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(e.opts.Title)
}

// drawWalls strokes the cell's intact walls as bands anchored on the cell
// edge, extending inward so neighboring strokes meet at the shared border.
func (e *ImageExporter) drawWalls(img *image.RGBA, c *maze.Cell, yOff, bOff int) {
	cs, ww := e.opts.CellSize, e.opts.WallWidth
	wall := e.opts.Palette.Wall
	x := c.X*cs + bOff
	y := c.Y*cs + yOff + bOff

	if c.HasWall(maze.North) {
		fillRect(img, x, y, cs, ww, wall)
	}
	if c.HasWall(maze.South) {
		fillRect(img, x, y+cs-ww, cs, ww, wall)
	}
	if c.HasWall(maze.West) {
		fillRect(img, x, y, ww, cs, wall)
	}
	if c.HasWall(maze.East) {
		fillRect(img, x+cs-ww, y, ww, cs, wall)
	}
}

// drawSolution joins consecutive route cell centers with thick segments and
// dots every center. Consecutive route cells are always grid-adjacent, so
// every segment is axis-aligned.
func (e *ImageExporter) drawSolution(img *image.RGBA, path []*maze.Cell, yOff, bOff int) {
	cs, ww := e.opts.CellSize, e.opts.WallWidth
	col := e.opts.Palette.Solution

	centers := make([]image.Point, len(path))
	for i, c := range path {
		centers[i] = image.Pt(c.X*cs+cs/2+bOff, c.Y*cs+cs/2+yOff+bOff)
	}

	stroke := ww * 2
	for i := 0; i+1 < len(centers); i++ {
		a, b := centers[i], centers[i+1]
		switch {
		case a.Y == b.Y:
			x0 := min(a.X, b.X)
			x1 := max(a.X, b.X)
			fillRect(img, x0, a.Y-stroke/2, x1-x0+1, stroke, col)
		case a.X == b.X:
			y0 := min(a.Y, b.Y)
			y1 := max(a.Y, b.Y)
			fillRect(img, a.X-stroke/2, y0, stroke, y1-y0+1, col)
		}
	}

	radius := cs / 4
	for _, p := range centers {
		fillCircle(img, p, radius, col)
	}
}

// drawFrame strokes the outer border inward around the maze band.
func (e *ImageExporter) drawFrame(img *image.RGBA, width, height, yOff int) {
	ww := e.opts.WallWidth
	col := e.opts.Palette.Border

	fillRect(img, 0, yOff, width, ww, col)
	fillRect(img, 0, yOff+height-ww, width, ww, col)
	fillRect(img, 0, yOff, ww, height, col)
	fillRect(img, width-ww, yOff, ww, height, col)
}

// fillRect paints a w×h rectangle anchored at (x, y).
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillCircle paints a filled disc; out-of-canvas pixels are dropped by SetRGBA.
func fillCircle(img *image.RGBA, center image.Point, radius int, c color.RGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(center.X+dx, center.Y+dy, c)
			}
		}
	}
}
