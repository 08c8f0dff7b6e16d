// Package output - filename hygiene and size formatting helpers.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// unsafeChars are replaced by CleanFilename; the set covers Windows
// restrictions, which subsume the POSIX ones.
const unsafeChars = `<>:"/\|?*`

// CleanFilename makes a bare filename safe across filesystems: unsafe
// characters become underscores, surrounding spaces and dots are trimmed,
// and an empty result becomes "unnamed". Directory separators are treated
// as unsafe, so pass filenames, not paths.
func CleanFilename(name string) string {
	cleaned := name
	for _, ch := range unsafeChars {
		cleaned = strings.ReplaceAll(cleaned, string(ch), "_")
	}
	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}

// UniquePath returns path unchanged when nothing sits there, otherwise the
// first stem_1.ext, stem_2.ext, … variant that is free.
func UniquePath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// FormatSize renders a byte count in a human unit with one decimal.
func FormatSize(n int64) string {
	if n == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
