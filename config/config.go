// Package config - sections, defaults and validation.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/refactornator/procedural-maze-generator/generator"
	"github.com/refactornator/procedural-maze-generator/render"
	"github.com/refactornator/procedural-maze-generator/solver"
)

var (
	// ErrUnsupportedFile reports a config file extension without a codec.
	ErrUnsupportedFile = errors.New("config: unsupported file format")

	// ErrInvalidConfig reports an out-of-range or unknown setting.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrBadColor reports a color literal that is not #RRGGBB.
	ErrBadColor = errors.New("config: bad color")
)

// Generation configures the default maze construction parameters.
type Generation struct {
	// Algorithm names a registered generator (see generator.Names).
	Algorithm string `yaml:"algorithm" json:"algorithm"`
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	// Seed pins the wall layout; zero leaves generators time-seeded.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Solving configures the default route search and its display toggles.
type Solving struct {
	// Algorithm names a registered solver (see solver.Names).
	Algorithm   string `yaml:"algorithm" json:"algorithm"`
	ShowVisited bool   `yaml:"show_visited" json:"show_visited"`
	ShowPath    bool   `yaml:"show_path" json:"show_path"`
}

// Colors is the export color scheme as #RRGGBB literals. Empty entries keep
// the palette defaults.
type Colors struct {
	Wall     string `yaml:"wall" json:"wall"`
	Path     string `yaml:"path" json:"path"`
	Start    string `yaml:"start" json:"start"`
	End      string `yaml:"end" json:"end"`
	Solution string `yaml:"solution" json:"solution"`
	Visited  string `yaml:"visited" json:"visited"`
}

// Visualization configures raster geometry and the color scheme.
type Visualization struct {
	CellSize  int    `yaml:"cell_size" json:"cell_size"`
	WallWidth int    `yaml:"wall_width" json:"wall_width"`
	Colors    Colors `yaml:"colors" json:"colors"`
}

// Export configures output format and directory layout.
type Export struct {
	// Format is one of png, jpg, jpeg, svg, ascii.
	Format      string `yaml:"format" json:"format"`
	JPEGQuality int    `yaml:"jpeg_quality" json:"jpeg_quality"`
	Border      bool   `yaml:"border" json:"border"`
	// Title stamps exports with a default caption when none is given.
	Title               bool   `yaml:"title" json:"title"`
	OutputDir           string `yaml:"output_dir" json:"output_dir"`
	AutoCreateDirs      bool   `yaml:"auto_create_dirs" json:"auto_create_dirs"`
	TimestampedNames    bool   `yaml:"timestamped_filenames" json:"timestamped_filenames"`
	OrganizeByAlgorithm bool   `yaml:"organize_by_algorithm" json:"organize_by_algorithm"`
	OrganizeByDate      bool   `yaml:"organize_by_date" json:"organize_by_date"`
	CleanupTempFiles    bool   `yaml:"cleanup_temp_files" json:"cleanup_temp_files"`
	TempFileMaxAge      int    `yaml:"temp_file_max_age_hours" json:"temp_file_max_age_hours"`
}

// Config is the full settings tree.
type Config struct {
	Generation    Generation    `yaml:"generation" json:"generation"`
	Solving       Solving       `yaml:"solving" json:"solving"`
	Visualization Visualization `yaml:"visualization" json:"visualization"`
	Export        Export        `yaml:"export" json:"export"`
}

// Default returns the built-in settings: a 20×20 DFS maze solved with A*,
// rendered at 20px cells with 2px walls, exported as PNG into "output".
func Default() Config {
	return Config{
		Generation: Generation{
			Algorithm: generator.AlgorithmDFS,
			Width:     20,
			Height:    20,
		},
		Solving: Solving{
			Algorithm:   solver.AlgorithmAStar,
			ShowVisited: true,
			ShowPath:    true,
		},
		Visualization: Visualization{
			CellSize:  20,
			WallWidth: 2,
			Colors: Colors{
				Wall:     "#000000",
				Path:     "#FFFFFF",
				Start:    "#00FF00",
				End:      "#FF0000",
				Solution: "#0000FF",
				Visited:  "#FFFF00",
			},
		},
		Export: Export{
			Format:           "png",
			JPEGQuality:      95,
			Border:           true,
			Title:            true,
			OutputDir:        "output",
			AutoCreateDirs:   true,
			CleanupTempFiles: true,
			TempFileMaxAge:   24,
		},
	}
}

// exportFormats lists the accepted Export.Format values.
var exportFormats = map[string]bool{
	"png":   true,
	"jpg":   true,
	"jpeg":  true,
	"svg":   true,
	"ascii": true,
}

// Validate checks every section and reports the first violation wrapped in
// ErrInvalidConfig. Algorithm names are resolved against the generator and
// solver registries, so registry aliases pass.
func (c Config) Validate() error {
	if c.Generation.Width < 1 || c.Generation.Height < 1 {
		return fmt.Errorf("%w: generation dimensions %dx%d",
			ErrInvalidConfig, c.Generation.Width, c.Generation.Height)
	}
	if _, err := generator.New(c.Generation.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := solver.New(c.Solving.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Visualization.CellSize < 1 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.Visualization.CellSize)
	}
	if c.Visualization.WallWidth < 0 {
		return fmt.Errorf("%w: wall width %d", ErrInvalidConfig, c.Visualization.WallWidth)
	}
	if _, err := c.Visualization.Colors.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !exportFormats[c.Export.Format] {
		return fmt.Errorf("%w: export format %q", ErrInvalidConfig, c.Export.Format)
	}
	if c.Export.JPEGQuality < 1 || c.Export.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg quality %d", ErrInvalidConfig, c.Export.JPEGQuality)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if c.Export.TempFileMaxAge < 0 {
		return fmt.Errorf("%w: temp file max age %d", ErrInvalidConfig, c.Export.TempFileMaxAge)
	}
	return nil
}

// Palette converts the scheme to a render palette. Empty entries keep the
// render defaults; background and frame colors are not configurable here.
func (c Colors) Palette() (render.Palette, error) {
	p := render.DefaultPalette()
	for _, e := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"wall", c.Wall, &p.Wall},
		{"path", c.Path, &p.Path},
		{"start", c.Start, &p.Start},
		{"end", c.End, &p.End},
		{"solution", c.Solution, &p.Solution},
		{"visited", c.Visited, &p.Visited},
	} {
		if e.hex == "" {
			continue
		}
		rgba, err := parseHexColor(e.hex)
		if err != nil {
			return render.Palette{}, fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = rgba
	}
	return p, nil
}

// parseHexColor decodes a #RRGGBB literal into an opaque RGBA.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
