// Package render turns carved mazes into terminal text, raster images, and
// SVG documents.
//
// What
//
// Three renderers share one read-only view of a *maze.Grid (walls, start/end
// markers, visited flags, the stored solution path):
//
//   - ASCIIRenderer — block render on a (2W+1)×(2H+1) character canvas, a
//     compact "+-+" render half that size, and a box-drawing border variant
//     with an optional centered title.
//   - ImageExporter — RGBA raster (PNG or JPEG) with configurable cell size,
//     wall thickness, palette, gray frame, and title line.
//   - The same ImageExporter emits SVG: identical palette and geometry,
//     vector lines instead of pixels.
//
// Layering
//
// Raster and vector output draw in the same fixed order: background, title,
// cell fills, solution overlay, walls, frame. Cell fill precedence is
// start > end > visited > plain, matching the ASCII glyph precedence
// start > end > solution > corridor. The solution overlay joins cell centers
// and only appears when the renderer was configured to show it and the grid
// actually carries a path.
//
// Options
//
// Both renderers are configured at construction through functional options
// (WithCellSize, WithShowSolution, WithTitle, WithPalette, ...). The zero
// configurations match the classic look: 20px cells, 2px walls, white
// corridors on black walls, '█' ASCII blocks.
//
// Errors
//
//   - ErrNilGrid           — a renderer received a nil grid.
//   - ErrUnsupportedFormat — Export was given a filename whose extension is
//     not .png, .jpg, .jpeg, or .svg.
package render
