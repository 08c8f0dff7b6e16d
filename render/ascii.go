// Package render - ASCII renditions for terminals and text files.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/refactornator/procedural-maze-generator/maze"
)

// ASCIIOptions configures the character set and overlays of ASCIIRenderer.
// Use DefaultASCIIOptions() plus the With* helpers.
type ASCIIOptions struct {
	// WallRune paints wall canvas slots (block render only).
	WallRune rune

	// PathRune paints open corridor slots and plain cells.
	PathRune rune

	// StartRune and EndRune mark the endpoints; they win over the solution.
	StartRune rune
	EndRune   rune

	// SolutionRune marks route cells (and, in the block render, the open
	// wall slots between two consecutive route cells).
	SolutionRune rune

	// ShowSolution overlays the grid's stored route when one exists.
	ShowSolution bool
}

// ASCIIOption mutates ASCIIOptions.
type ASCIIOption func(*ASCIIOptions)

// DefaultASCIIOptions returns the classic glyph set: solid blocks for walls,
// spaces for corridors, S/E endpoints, and '·' route dots, solution hidden.
func DefaultASCIIOptions() ASCIIOptions {
	return ASCIIOptions{
		WallRune:     '█',
		PathRune:     ' ',
		StartRune:    'S',
		EndRune:      'E',
		SolutionRune: '·',
	}
}

// WithWallRune overrides the wall glyph.
func WithWallRune(r rune) ASCIIOption { return func(o *ASCIIOptions) { o.WallRune = r } }

// WithPathRune overrides the corridor glyph.
func WithPathRune(r rune) ASCIIOption { return func(o *ASCIIOptions) { o.PathRune = r } }

// WithStartRune overrides the start-cell glyph.
func WithStartRune(r rune) ASCIIOption { return func(o *ASCIIOptions) { o.StartRune = r } }

// WithEndRune overrides the end-cell glyph.
func WithEndRune(r rune) ASCIIOption { return func(o *ASCIIOptions) { o.EndRune = r } }

// WithSolutionRune overrides the route glyph.
func WithSolutionRune(r rune) ASCIIOption { return func(o *ASCIIOptions) { o.SolutionRune = r } }

// WithSolutionShown toggles the route overlay.
func WithSolutionShown(show bool) ASCIIOption {
	return func(o *ASCIIOptions) { o.ShowSolution = show }
}

// ASCIIRenderer renders mazes as text. One renderer may serve many grids.
type ASCIIRenderer struct {
	opts ASCIIOptions
}

// NewASCIIRenderer returns a text renderer configured with opts.
func NewASCIIRenderer(opts ...ASCIIOption) *ASCIIRenderer {
	o := DefaultASCIIOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &ASCIIRenderer{opts: o}
}

// Render draws the maze on a (2W+1)×(2H+1) rune canvas: every cell owns the
// odd-odd slot (2x+1, 2y+1), wall slots sit between cells, and the canvas
// border stays solid wall. Rows are joined with newlines, no trailing one.
func (r *ASCIIRenderer) Render(g *maze.Grid) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}

	canvasW := g.Width()*2 + 1
	canvasH := g.Height()*2 + 1
	canvas := make([][]rune, canvasH)
	for y := range canvas {
		canvas[y] = make([]rune, canvasW)
		for x := range canvas[y] {
			canvas[y][x] = r.opts.WallRune
		}
	}

	onRoute := r.routeSet(g)
	for _, c := range g.Cells() {
		cx := c.X*2 + 1
		cy := c.Y*2 + 1
		canvas[cy][cx] = r.cellRune(c, onRoute)

		// Open directions clear the wall slot next to the cell. Slot
		// coordinates stay on the canvas because cells never sit on its rim.
		for _, d := range maze.Directions {
			if c.HasWall(d) {
				continue
			}
			dx, dy := d.Delta()
			slot := r.opts.PathRune
			if onRoute[c] {
				if nb := g.CellAt(c.X+dx, c.Y+dy); nb != nil && onRoute[nb] {
					slot = r.opts.SolutionRune
				}
			}
			canvas[cy+dy][cx+dx] = slot
		}
	}

	var sb strings.Builder
	sb.Grow(canvasH * (canvasW + 1))
	for y, row := range canvas {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, ch := range row {
			sb.WriteRune(ch)
		}
	}
	return sb.String(), nil
}

// RenderWithBorder wraps the block render in a box-drawing frame. A non-empty
// title gets its own centered band under the top edge.
func (r *ASCIIRenderer) RenderWithBorder(g *maze.Grid, title string) (string, error) {
	body, err := r.Render(g)
	if err != nil {
		return "", err
	}
	lines := strings.Split(body, "\n")

	innerWidth := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > innerWidth {
			innerWidth = n
		}
	}
	borderWidth := innerWidth + 4

	framed := make([]string, 0, len(lines)+4)
	framed = append(framed, "┌"+strings.Repeat("─", borderWidth-2)+"┐")
	if title != "" {
		framed = append(framed, "│ "+centerText(title, borderWidth-4)+" │")
		framed = append(framed, "├"+strings.Repeat("─", borderWidth-2)+"┤")
	}
	for _, line := range lines {
		framed = append(framed, "│ "+padRight(line, innerWidth)+" │")
	}
	framed = append(framed, "└"+strings.Repeat("─", borderWidth-2)+"┘")

	return strings.Join(framed, "\n"), nil
}

// RenderCompact draws the half-size rendition: one text row per cell row,
// "+-+" wall lines between them. Passages read through missing '|' and '-'.
func (r *ASCIIRenderer) RenderCompact(g *maze.Grid) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}

	onRoute := r.routeSet(g)
	lines := make([]string, 0, g.Height()*2+1)
	lines = append(lines, r.compactWallLine(g, 0, maze.North))

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for x := 0; x < g.Width(); x++ {
			c := g.CellAt(x, y)
			if c.HasWall(maze.West) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r.cellRune(c, onRoute))
		}
		sb.WriteByte('|')
		lines = append(lines, sb.String())

		if y < g.Height()-1 {
			lines = append(lines, r.compactWallLine(g, y, maze.South))
		}
	}
	lines = append(lines, r.compactWallLine(g, g.Height()-1, maze.South))

	return strings.Join(lines, "\n"), nil
}

// compactWallLine builds one "+-+ +" line from the d-side walls of row y.
func (r *ASCIIRenderer) compactWallLine(g *maze.Grid, y int, d maze.Direction) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for x := 0; x < g.Width(); x++ {
		if g.CellAt(x, y).HasWall(d) {
			sb.WriteString("-+")
		} else {
			sb.WriteString(" +")
		}
	}
	return sb.String()
}

// cellRune picks the glyph for a cell: start and end win over the route,
// the route wins over plain corridor.
func (r *ASCIIRenderer) cellRune(c *maze.Cell, onRoute map[*maze.Cell]bool) rune {
	switch {
	case c.IsStart():
		return r.opts.StartRune
	case c.IsEnd():
		return r.opts.EndRune
	case onRoute[c]:
		return r.opts.SolutionRune
	default:
		return r.opts.PathRune
	}
}

// routeSet indexes the grid's stored route for membership tests. Nil when the
// overlay is off or no route is stored; lookups on nil maps read false.
func (r *ASCIIRenderer) routeSet(g *maze.Grid) map[*maze.Cell]bool {
	if !r.opts.ShowSolution {
		return nil
	}
	path := g.SolutionPath()
	if len(path) == 0 {
		return nil
	}
	set := make(map[*maze.Cell]bool, len(path))
	for _, c := range path {
		set[c] = true
	}
	return set
}

// centerText pads s with spaces to width runes, extra space on the right.
// Strings already at or over width come back untouched.
func centerText(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// padRight extends s with spaces to width runes.
func padRight(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
