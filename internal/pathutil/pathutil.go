package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/nb/internal/constants"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ExpandHome replaces a leading "~" with the provided home directory.
func ExpandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		return filepath.Join(home, p[2:])
	}
	return p
}

// ResolveNotesDir turns a configured directory into an absolute, cleaned path.
// An empty value resolves to ~/notes, falling back to a relative "notes"
// directory when the home directory cannot be determined.
func ResolveNotesDir(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	dir = strings.TrimSpace(dir)
	if dir == "" {
		if home == "" {
			return constants.DefaultNotesDir
		}
		return filepath.Join(home, constants.DefaultNotesDir)
	}

	if home != "" {
		dir = ExpandHome(dir, home)
	}

	normalized := NormalizePath(dir)
	if abs, err := filepath.Abs(normalized); err == nil {
		return abs
	}
	return normalized
}

// Relative returns target relative to dir using forward slashes.
func Relative(dir, target string) (string, error) {
	rel, err := filepath.Rel(NormalizePath(dir), NormalizePath(target))
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// IsDirectChild reports whether target sits directly inside dir.
func IsDirectChild(dir, target string) bool {
	rel, err := Relative(dir, target)
	if err != nil || rel == "." || rel == "" {
		return false
	}
	return !strings.Contains(rel, "/") && rel != ".."
}

var ErrNotDirectory = errors.New("path exists but is not a directory")

// EnsureDir creates dir (and parents) when missing.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return ErrNotDirectory
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return os.MkdirAll(dir, 0o755)
}
