// Package snapshot stores rendered views as golden files and compares test
// output against them.
//
// A missing snapshot is written on first use and the comparison passes.
// Run tests with -update to rewrite existing snapshots.
package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// DirEnv overrides the snapshot directory (for testing the store itself).
	DirEnv = "WIDGETLAB_SNAPSHOT_DIR"
	// DefaultDir is relative to the package under test.
	DefaultDir = "testdata/__snapshots__"
	// Ext is appended to every snapshot file name.
	Ext = ".snap"
)

// Store reads and writes snapshot files.
// Layout: <dir>/<normalized-name>.snap
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at DefaultDir, or at the path in
// WIDGETLAB_SNAPSHOT_DIR if set.
func NewStore() *Store {
	base := os.Getenv(DirEnv)
	if base == "" {
		base = DefaultDir
	}
	return &Store{baseDir: base}
}

// BaseDir returns the snapshot directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the file for a snapshot name. Subtest separators and
// spaces become hyphens; the result is lowercase.
func (s *Store) Path(name string) string {
	r := strings.NewReplacer("/", "__", " ", "-", "\\", "-")
	normalized := strings.ToLower(r.Replace(name))
	return filepath.Join(s.baseDir, normalized+Ext)
}

// Load returns the stored snapshot. ok is false when none exists.
func (s *Store) Load(name string) (content string, ok bool, err error) {
	b, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Save writes a snapshot, creating the directory as needed.
func (s *Store) Save(name, content string) error {
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Normalize strips ANSI styling and trailing whitespace on every line so
// snapshots do not depend on the terminal's color profile.
func Normalize(view string) string {
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}
