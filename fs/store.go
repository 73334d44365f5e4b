// Package fs provides file-based storage for synced documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsync"
)

// Ensure Store implements docsync.DocStore at compile time.
var _ docsync.DocStore = (*Store)(nil)

// Store writes documents as flat files into a single directory.
// Files are overwritten unconditionally; concurrent runs against the same
// directory race and the last write wins.
type Store struct {
	dir string
}

// NewStore creates a new Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory documents are written to.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir creates the directory and any missing parents.
// It is a no-op if the directory already exists.
func (s *Store) EnsureDir(ctx context.Context) error {
	if s.dir == "" {
		return docsync.Errorf(docsync.EINVALID, "docs directory required")
	}
	return os.MkdirAll(s.dir, 0755)
}

// Save writes content to filename inside the directory.
func (s *Store) Save(ctx context.Context, filename, content string) error {
	if filename == "" || strings.ContainsAny(filename, `/\`) {
		return docsync.Errorf(docsync.EINVALID, "invalid filename %q", filename)
	}
	return os.WriteFile(filepath.Join(s.dir, filename), []byte(content), 0644)
}

// DefaultDir returns the per-user cache location for the given host
// application, e.g. ~/.cache/opencode/opencode-architect/docs on Linux.
func DefaultDir(app, plugin string) string {
	base, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".cache", app, plugin, "docs")
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app, plugin, "docs")
}
