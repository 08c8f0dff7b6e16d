// Package config - layered runtime settings for maze generation, solving,
// visualization and export.
//
// What it carries
//
//   - Generation: default algorithm, grid dimensions, optional seed.
//   - Solving: default algorithm, route and visited-cell display toggles.
//   - Visualization: raster geometry and a hex color scheme convertible to a
//     render.Palette.
//   - Export: output format, JPEG quality, frame and caption toggles, output
//     directory layout and housekeeping switches.
//
// Layering
//
// Settings resolve in three layers, each overriding the previous one:
//
//	Default() → Load(path) / LoadDefault() → ApplyEnv()
//
// Load starts from the built-in defaults, so a partial file only overrides
// the keys it names. LoadDefault probes DefaultPaths in order and silently
// falls back to the built-ins when no file exists. ApplyEnv reads a .env
// file when present and then applies MAZE_*-prefixed process environment
// overrides.
//
// Files
//
// Load and Save pick the codec from the file extension: .yaml/.yml or .json.
// Anything else is ErrUnsupportedFile.
//
// Errors
//
//   - ErrUnsupportedFile - Load/Save on an extension without a codec
//   - ErrInvalidConfig   - Validate found an out-of-range or unknown value
//   - ErrBadColor        - a color is not a #RRGGBB literal
package config
