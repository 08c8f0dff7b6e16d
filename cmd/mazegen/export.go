package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/refactornator/procedural-maze-generator/maze"
	"github.com/refactornator/procedural-maze-generator/output"
	"github.com/refactornator/procedural-maze-generator/render"
)

// exportRequest carries everything writeMaze needs to route one maze to the
// terminal or a file.
type exportRequest struct {
	grid         *maze.Grid
	format       string // png, jpg, jpeg, svg, ascii
	outputFile   string // explicit --output value, empty for automatic naming
	outputDir    string // explicit --output-dir value, empty for config
	cellSize     int
	wallWidth    int
	title        string // empty: config may stamp a default caption
	genAlgorithm string
	solveAlgo    string // set only for solved mazes
	showSolution bool
	showVisited  bool
	compact      bool // ASCII half-size rendition
	byAlgorithm  bool
	byDate       bool
	timestamped  bool
}

// writeMaze renders req.grid in the requested format. ASCII with no explicit
// output file prints to stdout; everything else lands in the managed output
// tree.
func writeMaze(req exportRequest) error {
	title := req.title
	if title == "" && cfg.Export.Title {
		title = fmt.Sprintf("Maze (%dx%d)", req.grid.Width(), req.grid.Height())
	}

	if req.format == "ascii" {
		return writeASCII(req, title)
	}
	return writeImage(req, title)
}

func writeASCII(req exportRequest, title string) error {
	r := render.NewASCIIRenderer(render.WithSolutionShown(req.showSolution))

	var (
		body string
		err  error
	)
	switch {
	case req.compact:
		body, err = r.RenderCompact(req.grid)
	case title != "":
		body, err = r.RenderWithBorder(req.grid, title)
	default:
		body, err = r.Render(req.grid)
	}
	if err != nil {
		return err
	}

	if req.outputFile == "" {
		fmt.Println(body)
		return nil
	}

	mgr, err := newOutputManager(req.outputDir)
	if err != nil {
		return err
	}
	path, err := organizedPath(mgr, req, outputFilename(req), output.KindASCII)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("ASCII maze saved to %s\n", path)
	return nil
}

func writeImage(req exportRequest, title string) error {
	palette, err := cfg.Visualization.Colors.Palette()
	if err != nil {
		return err
	}
	exporter := render.NewImageExporter(
		render.WithCellSize(req.cellSize),
		render.WithWallWidth(req.wallWidth),
		render.WithBorder(cfg.Export.Border),
		render.WithTitle(title),
		render.WithJPEGQuality(cfg.Export.JPEGQuality),
		render.WithPalette(palette),
		render.WithShowSolution(req.showSolution),
		render.WithShowVisited(req.showVisited),
	)

	mgr, err := newOutputManager(req.outputDir)
	if err != nil {
		return err
	}
	kind := output.KindImages
	if req.format == "svg" {
		kind = output.KindSVG
	}
	path, err := organizedPath(mgr, req, outputFilename(req), kind)
	if err != nil {
		return err
	}
	if err := exporter.Export(req.grid, path); err != nil {
		return err
	}
	fmt.Printf("Maze saved to %s\n", path)
	return nil
}

// outputFilename derives the target filename: the explicit --output value,
// or maze_WxH with algorithm and solver markers and the format extension.
func outputFilename(req exportRequest) string {
	if req.outputFile != "" {
		return req.outputFile
	}
	base := fmt.Sprintf("maze_%dx%d", req.grid.Width(), req.grid.Height())
	if req.byAlgorithm {
		base += "_" + req.genAlgorithm
	}
	if req.solveAlgo != "" {
		base += "_solved_" + req.solveAlgo
	}
	ext := req.format
	if ext == "ascii" {
		ext = "txt"
	}
	return base + "." + ext
}

// organizedPath routes filename into the output tree following the layout
// flags: per-algorithm and per-date subdirectories, timestamped names, or
// plain collision-suffixed routing.
func organizedPath(mgr *output.Manager, req exportRequest, filename, kind string) (string, error) {
	switch {
	case req.byAlgorithm:
		return mgr.AlgorithmPath(req.genAlgorithm, filename, kind)
	case req.byDate:
		return mgr.DatePath(filename, kind)
	case req.timestamped:
		ext := strings.TrimPrefix(filepath.Ext(filename), ".")
		stem := strings.TrimSuffix(filename, filepath.Ext(filename))
		return mgr.TimestampedPath(stem, ext, kind)
	default:
		return mgr.Path(filename, kind)
	}
}

// newOutputManager builds the manager for the effective output directory and
// runs the configured housekeeping.
func newOutputManager(dirFlag string) (*output.Manager, error) {
	dir := dirFlag
	if dir == "" {
		dir = cfg.Export.OutputDir
	}
	mgr := output.NewManager(dir)

	if cfg.Export.AutoCreateDirs {
		if err := mgr.Init(); err != nil {
			return nil, err
		}
	}
	if cfg.Export.CleanupTempFiles {
		maxAge := time.Duration(cfg.Export.TempFileMaxAge) * time.Hour
		if cleaned, err := mgr.CleanTemp(maxAge); err != nil {
			log.WithError(err).Warn("temp cleanup failed")
		} else if cleaned > 0 {
			log.Infof("cleaned up %d temporary files", cleaned)
		}
	}
	return mgr, nil
}
