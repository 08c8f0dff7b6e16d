// Package render - vector export: maze → SVG document.
package render

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// EncodeSVG writes the maze as an SVG document to w, using the exporter's
// palette and geometry. Elements appear in raster layer order: background,
// title, cell fills, route overlay, walls. A frame setting only grows the
// canvas; SVG output draws no frame stroke.
func (e *ImageExporter) EncodeSVG(w io.Writer, g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
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
	total := height + titleH

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n", width, total)
	fmt.Fprintf(&sb, "<rect width=\"%d\" height=\"%d\" fill=\"%s\" />\n",
		width, total, svgColor(e.opts.Palette.Background))

	if e.opts.Title != "" {
		fmt.Fprintf(&sb, "<text x=\"%d\" y=\"20\" text-anchor=\"middle\" font-family=\"Arial\" font-size=\"16\" font-weight=\"bold\">%s</text>\n",
			width/2, html.EscapeString(e.opts.Title))
	}

	yOff := titleH
	for _, c := range g.Cells() {
		fmt.Fprintf(&sb, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" />\n",
			c.X*cs, c.Y*cs+yOff, cs, cs, svgColor(e.cellColor(c)))
	}

	if e.opts.ShowSolution {
		if path := g.SolutionPath(); len(path) >= 2 {
			e.writeSolutionSVG(&sb, path, yOff)
		}
	}

	for _, c := range g.Cells() {
		e.writeWallsSVG(&sb, c, yOff)
	}

	sb.WriteString("</svg>")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}
	return nil
}

// writeSolutionSVG emits the route as one M/L path through cell centers,
// stroked at twice the wall width.
func (e *ImageExporter) writeSolutionSVG(sb *strings.Builder, path []*maze.Cell, yOff int) {
	cs, ww := e.opts.CellSize, e.opts.WallWidth

	segments := make([]string, len(path))
	for i, c := range path {
		cx := c.X*cs + cs/2
		cy := c.Y*cs + cs/2 + yOff
		verb := "L"
		if i == 0 {
			verb = "M"
		}
		segments[i] = fmt.Sprintf("%s %d %d", verb, cx, cy)
	}

	fmt.Fprintf(sb, "<path d=\"%s\" stroke=\"%s\" stroke-width=\"%d\" fill=\"none\" />\n",
		strings.Join(segments, " "), svgColor(e.opts.Palette.Solution), ww*2)
}

// writeWallsSVG emits one line element per intact wall of c.
func (e *ImageExporter) writeWallsSVG(sb *strings.Builder, c *maze.Cell, yOff int) {
	cs, ww := e.opts.CellSize, e.opts.WallWidth
	stroke := svgColor(e.opts.Palette.Wall)
	x := c.X * cs
	y := c.Y*cs + yOff

	if c.HasWall(maze.North) {
		fmt.Fprintf(sb, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"%d\" />\n",
			x, y, x+cs, y, stroke, ww)
	}
	if c.HasWall(maze.South) {
		fmt.Fprintf(sb, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"%d\" />\n",
			x, y+cs, x+cs, y+cs, stroke, ww)
	}
	if c.HasWall(maze.West) {
		fmt.Fprintf(sb, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"%d\" />\n",
			x, y, x, y+cs, stroke, ww)
	}
	if c.HasWall(maze.East) {
		fmt.Fprintf(sb, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"%d\" />\n",
			x+cs, y, x+cs, y+cs, stroke, ww)
	}
}

// svgColor formats a palette entry as a CSS rgb() literal.
func svgColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
