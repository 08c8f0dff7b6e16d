// Package output - Manager: directory structure, routing and housekeeping.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrNotWritable reports a directory that exists but rejects writes.
	ErrNotWritable = errors.New("output: directory not writable")

	// ErrUnknownKind reports a subdirectory name outside the layout.
	ErrUnknownKind = errors.New("output: unknown kind")
)

// Subdirectory names, also used as the kind argument of Path and List.
const (
	KindImages     = "images"
	KindASCII      = "ascii"
	KindSVG        = "svg"
	KindBenchmarks = "benchmarks"
	KindTemp       = "temp"
)

// kinds in README/listing order.
var kinds = [...]string{KindImages, KindASCII, KindSVG, KindBenchmarks, KindTemp}

// Kinds lists the managed subdirectory names in layout order.
// The slice is fresh on every call; callers may mutate it.
func Kinds() []string {
	return append([]string(nil), kinds[:]...)
}

// Manager owns one output directory tree.
type Manager struct {
	base     string
	counters map[string]int
}

// NewManager returns a manager rooted at base; empty means "output" in the
// working directory. Nothing is created until Init or a Path call.
func NewManager(base string) *Manager {
	if base == "" {
		base = "output"
	}
	return &Manager{base: base, counters: make(map[string]int)}
}

// Base returns the managed directory root.
func (m *Manager) Base() string { return m.base }

// Init creates the base directory and every subdirectory, then writes the
// README.txt marker. A failed README write is logged, not fatal.
func (m *Manager) Init() error {
	if err := ensureDir(m.base); err != nil {
		return err
	}
	for _, kind := range kinds {
		if err := ensureDir(filepath.Join(m.base, kind)); err != nil {
			return err
		}
	}
	if err := m.writeReadme(); err != nil {
		log.WithError(err).Warn("could not write output directory README")
	}
	return nil
}

// Reset removes the whole tree and rebuilds the empty structure.
func (m *Manager) Reset() error {
	if err := os.RemoveAll(m.base); err != nil {
		return fmt.Errorf("output: remove %s: %w", m.base, err)
	}
	m.counters = make(map[string]int)
	return m.Init()
}

// Path routes filename into the kind subdirectory, creating it on demand,
// and suffixes the name _1, _2, … while it is taken. Unknown kinds land in
// the base directory.
func (m *Manager) Path(filename, kind string) (string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return "", err
	}
	return UniquePath(filepath.Join(dir, CleanFilename(filename))), nil
}

// TimestampedPath builds prefix_YYYYMMDD_HHMMSS.ext inside the kind
// subdirectory. The clock makes collisions unlikely, so no suffixing.
func (m *Manager) TimestampedPath(prefix, ext, kind string) (string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
	return filepath.Join(dir, CleanFilename(name)), nil
}

// AutoPath builds prefix_0001.ext, prefix_0002.ext, … advancing a per-prefix
// counter past names already on disk.
func (m *Manager) AutoPath(prefix, ext, kind string) (string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return "", err
	}
	key := kind + "/" + prefix
	for n := m.counters[key] + 1; ; n++ {
		name := CleanFilename(fmt.Sprintf("%s_%04d.%s", prefix, n, ext))
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			m.counters[key] = n
			return path, nil
		}
	}
}

// AlgorithmPath nests filename under kind/algorithm/ for bulk runs grouped
// by generator or solver name.
func (m *Manager) AlgorithmPath(algorithm, filename, kind string) (string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return "", err
	}
	sub := filepath.Join(dir, CleanFilename(algorithm))
	if err := ensureDir(sub); err != nil {
		return "", err
	}
	return filepath.Join(sub, CleanFilename(filename)), nil
}

// DatePath nests filename under kind/YYYY-MM-DD/.
func (m *Manager) DatePath(filename, kind string) (string, error) {
	dir, err := m.kindDir(kind)
	if err != nil {
		return "", err
	}
	sub := filepath.Join(dir, time.Now().Format("2006-01-02"))
	if err := ensureDir(sub); err != nil {
		return "", err
	}
	return filepath.Join(sub, CleanFilename(filename)), nil
}

// CleanTemp deletes files in temp/ older than maxAge and reports how many
// went away. A missing temp directory cleans zero files.
func (m *Manager) CleanTemp(maxAge time.Duration) (int, error) {
	dir := filepath.Join(m.base, KindTemp)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("output: read %s: %w", dir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.WithError(err).Warnf("could not delete temp file %s", path)
				continue
			}
			cleaned++
		}
	}
	return cleaned, nil
}

// List returns the files under each subdirectory, relative to the base and
// sorted. Kind narrows the listing to one subdirectory; empty lists all.
func (m *Manager) List(kind string) (map[string][]string, error) {
	targets := kinds[:]
	if kind != "" {
		if !validKind(kind) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
		targets = []string{kind}
	}

	listing := make(map[string][]string, len(targets))
	for _, k := range targets {
		dir := filepath.Join(m.base, k)
		files := []string{}
		if _, err := os.Stat(dir); err == nil {
			err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return err
				}
				rel, relErr := filepath.Rel(m.base, path)
				if relErr != nil {
					return relErr
				}
				files = append(files, rel)
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("output: list %s: %w", dir, err)
			}
		}
		sort.Strings(files)
		listing[k] = files
	}
	return listing, nil
}

// Size walks the whole tree and sums file sizes in bytes. A missing base
// directory has size zero.
func (m *Manager) Size() (int64, error) {
	if _, err := os.Stat(m.base); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("output: stat %s: %w", m.base, err)
	}

	var total int64
	err := filepath.WalkDir(m.base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil // skip entries that vanish mid-walk
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("output: walk %s: %w", m.base, err)
	}
	return total, nil
}

func (m *Manager) String() string {
	return fmt.Sprintf("Manager(base=%q)", m.base)
}

// kindDir resolves and creates the directory for a kind. Unknown kinds fall
// back to the base directory, matching the routing of Path.
func (m *Manager) kindDir(kind string) (string, error) {
	dir := m.base
	if validKind(kind) {
		dir = filepath.Join(m.base, kind)
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func validKind(kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ensureDir creates the directory and probes that it accepts writes.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: create %s: %w", dir, err)
	}
	probe := filepath.Join(dir, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, dir)
	}
	f.Close()
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("output: remove probe %s: %w", probe, err)
	}
	return nil
}

func (m *Manager) writeReadme() error {
	var sb strings.Builder
	sb.WriteString("Procedural Maze Generator - Output Directory\n")
	sb.WriteString(strings.Repeat("=", 45) + "\n\n")
	sb.WriteString("Created: " + time.Now().Format("2006-01-02 15:04:05") + "\n\n")
	sb.WriteString("Directory Structure:\n")
	sb.WriteString("- images/      : PNG and JPEG maze images\n")
	sb.WriteString("- ascii/       : ASCII text maze files\n")
	sb.WriteString("- svg/         : SVG vector maze files\n")
	sb.WriteString("- benchmarks/  : Performance benchmark results\n")
	sb.WriteString("- temp/        : Temporary files\n\n")
	sb.WriteString("This directory was created automatically by the\n")
	sb.WriteString("Procedural Maze Generator application.\n")

	return os.WriteFile(filepath.Join(m.base, "README.txt"), []byte(sb.String()), 0o644)
}
